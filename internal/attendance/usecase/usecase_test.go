package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sirumat/record-service/internal/attendance"
	"github.com/sirumat/record-service/internal/attendance/dto"
	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/internal/sheet/repository"
	"github.com/sirumat/record-service/pkg/logger"
)

func newStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore()
	ctx := context.Background()
	for _, schema := range []sheet.Schema{sheet.Attendance, sheet.Cleaning} {
		if err := store.EnsureSheet(ctx, schema.Sheet, schema.Header); err != nil {
			t.Fatalf("ensure %s: %v", schema.Sheet, err)
		}
	}
	return store
}

func TestCheckInRequiresEvidence(t *testing.T) {
	ctx := context.Background()
	uc := NewAttendanceUseCase(newStore(t), logger.NewNop())

	_, err := uc.CheckIn(ctx, &dto.CheckInInput{Employee: "Wati", Status: model.AttendancePresent})
	if !errors.Is(err, attendance.ErrEvidenceRequired) {
		t.Fatalf("expected ErrEvidenceRequired, got %v", err)
	}

	// The dash sentinel is "no evidence" too, not a path.
	_, err = uc.CheckIn(ctx, &dto.CheckInInput{Employee: "Wati", Evidence: model.NoEvidence})
	if !errors.Is(err, attendance.ErrEvidenceRequired) {
		t.Fatalf("expected ErrEvidenceRequired for %q, got %v", model.NoEvidence, err)
	}
}

func TestCheckInAndListByDate(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	uc := NewAttendanceUseCase(store, logger.NewNop())

	rec, err := uc.CheckIn(ctx, &dto.CheckInInput{
		Employee: "Wati",
		Status:   model.AttendancePresent,
		Evidence: "galeri_bukti/wati.jpg",
	})
	if err != nil {
		t.Fatalf("check in: %v", err)
	}

	date := rec.Timestamp[:10]
	recs, err := uc.ListByDate(ctx, date)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 || recs[0].Employee != "Wati" {
		t.Fatalf("unexpected records: %+v", recs)
	}

	recs, err = uc.ListByDate(ctx, "1999-01-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %+v", recs)
	}
}

func TestLogCleaning(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	uc := NewAttendanceUseCase(store, logger.NewNop())

	entry, err := uc.LogCleaning(ctx, &dto.CleaningInput{
		Officer:   "Joko",
		Area:      "Toilet",
		Condition: model.ConditionClean,
	})
	if err != nil {
		t.Fatalf("log cleaning: %v", err)
	}
	if entry.Evidence != model.NoEvidence {
		t.Fatalf("missing photo should store %q, got %q", model.NoEvidence, entry.Evidence)
	}

	entries, err := uc.ListCleaning(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Area != "Toilet" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
