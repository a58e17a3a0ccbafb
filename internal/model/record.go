package model

// NoEvidence is stored in a Bukti Foto cell when no photo was captured.
// Renderers must treat it as "absent", never as a path.
const NoEvidence = "-"

// TimeLayout is the timestamp format written to every sheet.
const TimeLayout = "2006-01-02 15:04:05"

// DamageReport status values. A report never leaves StatusDone.
const (
	StatusPending = "Pending"
	StatusDone    = "Selesai"
)

// ContentPlan status values.
const (
	ContentStatusIdea   = "Ide"
	ContentStatusDraft  = "Draft"
	ContentStatusReady  = "Siap Post"
	ContentStatusPosted = "Sudah Post"
)

// AttendanceRecord status values.
const (
	AttendancePresent = "Hadir"
	AttendanceExcused = "Izin"
	AttendanceSick    = "Sakit"
)

// CleaningChecklist condition values.
const (
	ConditionClean = "Bersih"
	ConditionDirty = "Kotor"
)

// DamageReport is a row in Laporan_Kerusakan. TicketID is assigned once at
// submission and never changes; Status is the only mutable field.
type DamageReport struct {
	Timestamp   string
	Reporter    string
	Location    string
	Description string
	Evidence    string
	TicketID    string
	Status      string
}

// RepairRecord is a row in Laporan_Perbaikan. Append-only. TicketID may be the
// manual sentinel when the repair was not filed against an open ticket.
type RepairRecord struct {
	Timestamp  string
	Technician string
	Location   string
	Action     string
	Evidence   string
	TicketID   string
}

// InventoryItem is a row in Inventaris_Barang. Name is the lookup key; the
// store does not enforce uniqueness.
type InventoryItem struct {
	Name        string
	Category    string
	Stock       int
	Unit        string
	MinStock    int
	LastUpdated string
}

// LowStock reports whether the item is at or below its minimum.
func (i InventoryItem) LowStock() bool {
	return i.Stock <= i.MinStock
}

// AttendanceRecord is a row in Presensi_PPNPN. Append-only; Evidence is
// mandatory at capture time.
type AttendanceRecord struct {
	Timestamp string
	Employee  string
	Status    string
	Note      string
	Evidence  string
}

// CleaningChecklist is a row in Checklist_Kebersihan. Append-only.
type CleaningChecklist struct {
	Timestamp string
	Officer   string
	Area      string
	Condition string
	Evidence  string
}

// ContentPlan is a row in Rencana_Konten. Append-only. Platform holds one or
// more platform names joined with ", ".
type ContentPlan struct {
	Date     string
	Caption  string
	Platform string
	Status   string
}
