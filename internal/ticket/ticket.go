package ticket

import (
	"errors"
	"time"
)

// IDPrefix starts every generated ticket id.
const IDPrefix = "TKT-"

// ManualTicket is written to a repair's Tiket ID cell when the repair was not
// filed against an open ticket.
const ManualTicket = "Non-Tiket"

var (
	// ErrTicketNotFound means the referenced ticket id matched no row.
	ErrTicketNotFound = errors.New("ticket: not found")

	// ErrTicketNotClosed means the repair record was appended but the ticket's
	// status cell could not be updated. The repair is not rolled back; the
	// operator sees the inconsistency instead.
	ErrTicketNotClosed = errors.New("ticket: repair saved but ticket still open")
)

// NewID derives a ticket id from the submission time. Uniqueness holds only as
// long as no two submissions share the same second; collisions are a known
// open risk.
func NewID(t time.Time) string {
	return IDPrefix + t.Format("20060102150405")
}
