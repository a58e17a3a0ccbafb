package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/internal/sheet/repository"
	"github.com/sirumat/record-service/internal/ticket"
	"github.com/sirumat/record-service/internal/ticket/dto"
	"github.com/sirumat/record-service/pkg/logger"
)

var ticketIDPattern = regexp.MustCompile(`^TKT-\d{14}$`)

func newStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore()
	ctx := context.Background()
	for _, schema := range sheet.Schemas {
		if err := store.EnsureSheet(ctx, schema.Sheet, schema.Header); err != nil {
			t.Fatalf("ensure %s: %v", schema.Sheet, err)
		}
	}
	return store
}

func TestSubmitDamageReport(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	uc := NewTicketUseCase(store, logger.NewNop())

	r, err := uc.SubmitDamageReport(ctx, &dto.SubmitDamageReportInput{
		Reporter:    "Budi",
		Location:    "Lobby",
		Description: "Lampu mati",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !ticketIDPattern.MatchString(r.TicketID) {
		t.Fatalf("bad ticket id %q", r.TicketID)
	}
	if r.Status != model.StatusPending {
		t.Fatalf("expected Pending, got %q", r.Status)
	}
	if r.Evidence != model.NoEvidence {
		t.Fatalf("missing photo should store %q, got %q", model.NoEvidence, r.Evidence)
	}

	rows, _ := store.LoadAll(ctx, sheet.DamageReports.Sheet)
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	reports, _ := sheet.DecodeDamageReports(rows)
	if reports[0].Reporter != "Budi" || reports[0].Location != "Lobby" {
		t.Fatalf("unexpected stored report: %+v", reports[0])
	}
}

func TestFileRepairClosesTicket(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	uc := NewTicketUseCase(store, logger.NewNop())

	r, err := uc.SubmitDamageReport(ctx, &dto.SubmitDamageReportInput{
		Reporter: "Budi", Location: "Lobby", Description: "Lampu mati",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	res, err := uc.FileRepair(ctx, &dto.FileRepairInput{
		Technician: "Andi",
		Location:   "Lobby",
		Action:     "Ganti lampu",
		TicketID:   r.TicketID,
	})
	if err != nil {
		t.Fatalf("file repair: %v", err)
	}
	if !res.TicketClosed {
		t.Fatal("expected ticket closed")
	}

	repairs, err := uc.ListRepairs(ctx)
	if err != nil {
		t.Fatalf("list repairs: %v", err)
	}
	if len(repairs) != 1 || repairs[0].TicketID != r.TicketID {
		t.Fatalf("unexpected repairs: %+v", repairs)
	}

	open, err := uc.ListOpenTickets(ctx)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("ticket should no longer be open: %+v", open)
	}

	all, _ := uc.ListDamageReports(ctx)
	if all[0].Status != model.StatusDone {
		t.Fatalf("expected %q, got %q", model.StatusDone, all[0].Status)
	}
}

func TestFileRepairWithoutTicketUsesSentinel(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	uc := NewTicketUseCase(store, logger.NewNop())

	res, err := uc.FileRepair(ctx, &dto.FileRepairInput{
		Technician: "Andi", Location: "Pantry", Action: "Las pipa",
	})
	if err != nil {
		t.Fatalf("file repair: %v", err)
	}
	if res.TicketClosed {
		t.Fatal("manual repair must not close anything")
	}
	if res.Repair.TicketID != ticket.ManualTicket {
		t.Fatalf("expected sentinel %q, got %q", ticket.ManualTicket, res.Repair.TicketID)
	}
}

// failingUpdateStore makes every cell update fail, to force the window where
// the repair append succeeded but the status update did not.
type failingUpdateStore struct {
	*repository.MemoryStore
}

func (f *failingUpdateStore) UpdateCell(ctx context.Context, name string, row, col int, value string) error {
	return errors.New("quota exceeded")
}

func TestFileRepairPartialFailure(t *testing.T) {
	ctx := context.Background()
	mem := newStore(t)
	uc := NewTicketUseCase(&failingUpdateStore{mem}, logger.NewNop())

	r, err := uc.SubmitDamageReport(ctx, &dto.SubmitDamageReportInput{
		Reporter: "Budi", Location: "Lobby", Description: "Lampu mati",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	res, err := uc.FileRepair(ctx, &dto.FileRepairInput{
		Technician: "Andi", Action: "Ganti lampu", TicketID: r.TicketID,
	})
	if !errors.Is(err, ticket.ErrTicketNotClosed) {
		t.Fatalf("expected ErrTicketNotClosed, got %v", err)
	}
	if res == nil || res.TicketClosed {
		t.Fatalf("expected partial result, got %+v", res)
	}

	// The repair stays; the ticket stays Pending. No rollback.
	repairs, _ := uc.ListRepairs(ctx)
	if len(repairs) != 1 {
		t.Fatalf("repair should be persisted, got %d", len(repairs))
	}
	open, _ := uc.ListOpenTickets(ctx)
	if len(open) != 1 {
		t.Fatalf("ticket should still be Pending, got %d open", len(open))
	}
}

func TestListOpenTicketsFiltersDone(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	uc := NewTicketUseCase(store, logger.NewNop())

	store.AppendRow(ctx, sheet.DamageReports.Sheet, sheet.EncodeDamageReport(model.DamageReport{
		TicketID: "TKT-20260101000000", Status: model.StatusDone,
	}))
	store.AppendRow(ctx, sheet.DamageReports.Sheet, sheet.EncodeDamageReport(model.DamageReport{
		TicketID: "TKT-20260101000001", Status: model.StatusPending,
	}))

	open, err := uc.ListOpenTickets(ctx)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 1 || open[0].TicketID != "TKT-20260101000001" {
		t.Fatalf("unexpected open tickets: %+v", open)
	}
}
