package dto

import "github.com/sirumat/record-service/internal/model"

type SubmitDamageReportInput struct {
	Reporter    string
	Location    string
	Description string
	Evidence    string
}

type FileRepairInput struct {
	Technician string
	Location   string
	Action     string
	Evidence   string
	// TicketID is the open ticket the repair closes. Empty means a manual
	// repair with no ticket; the sentinel is written in its place.
	TicketID string
}

// FileRepairResult reports how far the two-step repair flow got. Repair is
// always the appended record; TicketClosed is false when the status update was
// skipped (manual repair) or failed (partial state, see the returned error).
type FileRepairResult struct {
	Repair       model.RepairRecord
	TicketClosed bool
}
