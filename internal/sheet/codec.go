package sheet

import (
	"strconv"
	"strings"

	"github.com/sirumat/record-service/internal/model"
)

// The codec converts between typed entities and flat positional rows. Encoding
// follows the schema's column order exactly. Decoding builds a column index
// from the sheet's actual header row, so a sheet whose columns were appended
// over time (the ticket-id upgrade did this) still decodes correctly.
//
// Decoding never fails: short rows read as empty cells, unknown columns are
// ignored, and numeric cells that don't parse coerce to zero. Each decoder
// additionally reports how many data rows were shorter than the header, so
// callers can log the drift without treating it as an error.

// cell returns the 1-indexed column of a row, or "" when the row is short or
// the column is unknown.
func cell(row []string, col int) string {
	if col <= 0 || col > len(row) {
		return ""
	}
	return row[col-1]
}

// parseStock parses a stock-like cell permissively: surrounding whitespace is
// dropped and anything non-numeric coerces to zero.
func parseStock(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// index maps a schema's column names through the actual header row.
func index(schema Schema, header []string) map[string]int {
	idx := make(map[string]int, len(schema.Header))
	for _, name := range schema.Header {
		for i, h := range header {
			if h == name {
				idx[name] = i + 1
				break
			}
		}
	}
	return idx
}

func splitHeader(rows [][]string) (header []string, data [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], rows[1:]
}

func EncodeDamageReport(r model.DamageReport) []string {
	return []string{r.Timestamp, r.Reporter, r.Location, r.Description, r.Evidence, r.TicketID, r.Status}
}

func DecodeDamageReports(rows [][]string) ([]model.DamageReport, int) {
	header, data := splitHeader(rows)
	idx := index(DamageReports, header)
	short := 0
	out := make([]model.DamageReport, 0, len(data))
	for _, row := range data {
		if len(row) < len(header) {
			short++
		}
		out = append(out, model.DamageReport{
			Timestamp:   cell(row, idx["Tanggal"]),
			Reporter:    cell(row, idx["Nama Pelapor"]),
			Location:    cell(row, idx["Lokasi"]),
			Description: cell(row, idx["Kendala"]),
			Evidence:    cell(row, idx["Bukti Foto"]),
			TicketID:    cell(row, idx["Tiket ID"]),
			Status:      cell(row, idx["Status"]),
		})
	}
	return out, short
}

func EncodeRepairRecord(r model.RepairRecord) []string {
	return []string{r.Timestamp, r.Technician, r.Location, r.Action, r.Evidence, r.TicketID}
}

func DecodeRepairRecords(rows [][]string) ([]model.RepairRecord, int) {
	header, data := splitHeader(rows)
	idx := index(Repairs, header)
	short := 0
	out := make([]model.RepairRecord, 0, len(data))
	for _, row := range data {
		if len(row) < len(header) {
			short++
		}
		out = append(out, model.RepairRecord{
			Timestamp:  cell(row, idx["Tanggal"]),
			Technician: cell(row, idx["Nama Teknisi"]),
			Location:   cell(row, idx["Lokasi"]),
			Action:     cell(row, idx["Tindakan Perbaikan"]),
			Evidence:   cell(row, idx["Bukti Foto"]),
			TicketID:   cell(row, idx["Tiket ID"]),
		})
	}
	return out, short
}

func EncodeInventoryItem(i model.InventoryItem) []string {
	return []string{i.Name, i.Category, strconv.Itoa(i.Stock), i.Unit, strconv.Itoa(i.MinStock), i.LastUpdated}
}

func DecodeInventoryItems(rows [][]string) ([]model.InventoryItem, int) {
	header, data := splitHeader(rows)
	idx := index(Inventory, header)
	short := 0
	out := make([]model.InventoryItem, 0, len(data))
	for _, row := range data {
		if len(row) < len(header) {
			short++
		}
		out = append(out, model.InventoryItem{
			Name:        cell(row, idx["Nama Barang"]),
			Category:    cell(row, idx["Kategori"]),
			Stock:       parseStock(cell(row, idx["Stok"])),
			Unit:        cell(row, idx["Satuan"]),
			MinStock:    parseStock(cell(row, idx["Min Stok"])),
			LastUpdated: cell(row, idx["Terakhir Update"]),
		})
	}
	return out, short
}

func EncodeAttendanceRecord(a model.AttendanceRecord) []string {
	return []string{a.Timestamp, a.Employee, a.Status, a.Note, a.Evidence}
}

func DecodeAttendanceRecords(rows [][]string) ([]model.AttendanceRecord, int) {
	header, data := splitHeader(rows)
	idx := index(Attendance, header)
	short := 0
	out := make([]model.AttendanceRecord, 0, len(data))
	for _, row := range data {
		if len(row) < len(header) {
			short++
		}
		out = append(out, model.AttendanceRecord{
			Timestamp: cell(row, idx["Waktu"]),
			Employee:  cell(row, idx["Nama Pegawai"]),
			Status:    cell(row, idx["Status"]),
			Note:      cell(row, idx["Keterangan"]),
			Evidence:  cell(row, idx["Bukti Foto"]),
		})
	}
	return out, short
}

func EncodeCleaningChecklist(c model.CleaningChecklist) []string {
	return []string{c.Timestamp, c.Officer, c.Area, c.Condition, c.Evidence}
}

func DecodeCleaningChecklists(rows [][]string) ([]model.CleaningChecklist, int) {
	header, data := splitHeader(rows)
	idx := index(Cleaning, header)
	short := 0
	out := make([]model.CleaningChecklist, 0, len(data))
	for _, row := range data {
		if len(row) < len(header) {
			short++
		}
		out = append(out, model.CleaningChecklist{
			Timestamp: cell(row, idx["Tanggal"]),
			Officer:   cell(row, idx["Nama Petugas"]),
			Area:      cell(row, idx["Area"]),
			Condition: cell(row, idx["Kondisi"]),
			Evidence:  cell(row, idx["Bukti Foto"]),
		})
	}
	return out, short
}

func EncodeContentPlan(p model.ContentPlan) []string {
	return []string{p.Date, p.Caption, p.Platform, p.Status}
}

func DecodeContentPlans(rows [][]string) ([]model.ContentPlan, int) {
	header, data := splitHeader(rows)
	idx := index(ContentPlans, header)
	short := 0
	out := make([]model.ContentPlan, 0, len(data))
	for _, row := range data {
		if len(row) < len(header) {
			short++
		}
		out = append(out, model.ContentPlan{
			Date:     cell(row, idx["Tanggal"]),
			Caption:  cell(row, idx["Caption"]),
			Platform: cell(row, idx["Platform"]),
			Status:   cell(row, idx["Status"]),
		})
	}
	return out, short
}
