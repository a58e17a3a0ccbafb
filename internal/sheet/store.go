package sheet

import (
	"context"
	"errors"
)

var (
	// ErrNoCredentials means no credential source could be resolved. Fatal for
	// the interaction; callers abort without retrying.
	ErrNoCredentials = errors.New("sheet: no credentials available")

	// ErrStoreNotFound means the spreadsheet itself could not be opened under
	// either of its known names.
	ErrStoreNotFound = errors.New("sheet: spreadsheet not found")

	// ErrSheetNotFound means a named worksheet does not exist. Only surfaced by
	// administrative paths; LoadAll degrades to an empty result instead.
	ErrSheetNotFound = errors.New("sheet: worksheet not found")

	// ErrValueNotFound means FindRowByValue scanned the whole sheet without a
	// match.
	ErrValueNotFound = errors.New("sheet: value not found")

	// ErrWrite wraps any failed append or cell update. There is no automatic
	// retry; the operator resubmits.
	ErrWrite = errors.New("sheet: write failed")
)

// Store is the full surface the rest of the system is built on. Row and column
// addressing is 1-indexed and row 1 is always the header row.
//
// None of the operations carry a version check or a lock: a find-then-update
// pair racing with another writer loses silently (last write wins). That is a
// property of the backing store, documented here so callers don't assume more.
type Store interface {
	// LoadAll returns every row of the sheet, header included. A sheet that
	// does not exist yields an empty result, not an error; use EnsureSheet
	// when missing-vs-empty matters.
	LoadAll(ctx context.Context, sheet string) ([][]string, error)

	// AppendRow appends exactly one row at the next free position.
	AppendRow(ctx context.Context, sheet string, row []string) error

	// FindRowByValue returns the 1-indexed row of the first cell anywhere in
	// the sheet equal to value. First match wins; duplicate values resolve to
	// the earlier row.
	FindRowByValue(ctx context.Context, sheet, value string) (int, error)

	// UpdateCell overwrites a single cell.
	UpdateCell(ctx context.Context, sheet string, row, col int, value string) error

	// EnsureSheet creates the worksheet with the given header row if it does
	// not exist yet. Existing sheets are left untouched.
	EnsureSheet(ctx context.Context, sheet string, header []string) error
}
