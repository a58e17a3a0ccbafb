package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/sirumat/record-service/internal/sheet"
)

// Both backends must expose identical observable semantics, so every suite
// runs against both.
func stores(t *testing.T) map[string]sheet.Store {
	t.Helper()
	sqlStore, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlStore.Close() })
	return map[string]sheet.Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlStore,
	}
}

func TestLoadAllMissingSheetIsEmpty(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		rows, err := store.LoadAll(ctx, "Tidak_Ada")
		if err != nil {
			t.Fatalf("%s: missing sheet must not error: %v", name, err)
		}
		if len(rows) != 0 {
			t.Fatalf("%s: expected empty rows, got %d", name, len(rows))
		}
	}
}

func TestEnsureAndAppend(t *testing.T) {
	ctx := context.Background()
	header := []string{"A", "B"}
	for name, store := range stores(t) {
		if err := store.EnsureSheet(ctx, "Uji", header); err != nil {
			t.Fatalf("%s: ensure: %v", name, err)
		}
		// Idempotent: a second ensure leaves the sheet alone.
		if err := store.EnsureSheet(ctx, "Uji", header); err != nil {
			t.Fatalf("%s: re-ensure: %v", name, err)
		}

		if err := store.AppendRow(ctx, "Uji", []string{"1", "2"}); err != nil {
			t.Fatalf("%s: append: %v", name, err)
		}
		if err := store.AppendRow(ctx, "Uji", []string{"3", "4"}); err != nil {
			t.Fatalf("%s: append: %v", name, err)
		}

		rows, err := store.LoadAll(ctx, "Uji")
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if len(rows) != 3 {
			t.Fatalf("%s: expected header + 2 rows, got %d", name, len(rows))
		}
		if rows[0][0] != "A" || rows[2][1] != "4" {
			t.Fatalf("%s: unexpected rows: %v", name, rows)
		}
	}
}

func TestAppendToMissingSheetFails(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		err := store.AppendRow(ctx, "Tidak_Ada", []string{"x"})
		if !errors.Is(err, sheet.ErrWrite) {
			t.Fatalf("%s: expected ErrWrite, got %v", name, err)
		}
	}
}

func TestFindRowByValueFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		if err := store.EnsureSheet(ctx, "Uji", []string{"Nama", "Nilai"}); err != nil {
			t.Fatalf("%s: ensure: %v", name, err)
		}
		store.AppendRow(ctx, "Uji", []string{"Kertas A4", "5"})
		store.AppendRow(ctx, "Uji", []string{"Spidol", "3"})
		store.AppendRow(ctx, "Uji", []string{"Kertas A4", "9"})

		row, err := store.FindRowByValue(ctx, "Uji", "Kertas A4")
		if err != nil {
			t.Fatalf("%s: find: %v", name, err)
		}
		if row != 2 {
			t.Fatalf("%s: first match must win, expected row 2 got %d", name, row)
		}

		if _, err := store.FindRowByValue(ctx, "Uji", "Penghapus"); !errors.Is(err, sheet.ErrValueNotFound) {
			t.Fatalf("%s: expected ErrValueNotFound, got %v", name, err)
		}
	}
}

func TestUpdateCell(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		if err := store.EnsureSheet(ctx, "Uji", []string{"Nama", "Status"}); err != nil {
			t.Fatalf("%s: ensure: %v", name, err)
		}
		store.AppendRow(ctx, "Uji", []string{"TKT-1", "Pending"})

		if err := store.UpdateCell(ctx, "Uji", 2, 2, "Selesai"); err != nil {
			t.Fatalf("%s: update: %v", name, err)
		}
		rows, _ := store.LoadAll(ctx, "Uji")
		if rows[1][1] != "Selesai" {
			t.Fatalf("%s: expected Selesai, got %q", name, rows[1][1])
		}

		// Updating past the row's current width pads the row.
		if err := store.UpdateCell(ctx, "Uji", 2, 4, "extra"); err != nil {
			t.Fatalf("%s: padded update: %v", name, err)
		}
		rows, _ = store.LoadAll(ctx, "Uji")
		if len(rows[1]) < 4 || rows[1][3] != "extra" {
			t.Fatalf("%s: expected padded row, got %v", name, rows[1])
		}

		if err := store.UpdateCell(ctx, "Uji", 99, 1, "x"); !errors.Is(err, sheet.ErrWrite) {
			t.Fatalf("%s: out-of-range update should be ErrWrite, got %v", name, err)
		}
	}
}
