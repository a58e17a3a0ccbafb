// Package report holds the pure projections behind the dashboard and the
// low-stock alerts. Everything here operates on already-loaded records; there
// is no I/O and empty input produces empty output.
package report

import (
	"strings"

	"github.com/sirumat/record-service/internal/model"
)

// LowStockItems returns the items at or below their minimum stock.
func LowStockItems(items []model.InventoryItem) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	return out
}

// DefectsByLocation counts damage reports per location.
func DefectsByLocation(reports []model.DamageReport) map[string]int {
	counts := make(map[string]int, len(reports))
	for _, r := range reports {
		counts[r.Location]++
	}
	return counts
}

// AttendanceOn filters records to a single day by prefix match on the date
// portion of the Waktu field, e.g. "2026-08-30".
func AttendanceOn(recs []model.AttendanceRecord, date string) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(recs))
	for _, r := range recs {
		if strings.HasPrefix(r.Timestamp, date) {
			out = append(out, r)
		}
	}
	return out
}

// ContentByStatus counts content plans per status. The dashboard reads the
// "Ide" bucket from this.
func ContentByStatus(plans []model.ContentPlan) map[string]int {
	counts := make(map[string]int, len(plans))
	for _, p := range plans {
		counts[p.Status]++
	}
	return counts
}
