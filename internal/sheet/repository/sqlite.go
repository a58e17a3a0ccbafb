package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sirumat/record-service/internal/sheet"
)

// SQLiteStore implements sheet.Store on a local sqlite file. It mirrors the
// spreadsheet's shape rather than a relational one: every row is kept as a
// JSON cell array keyed by (sheet, row number), so row/column addressing and
// first-match scans behave exactly like the remote store. Use ":memory:" for
// a throwaway database.
type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worksheets (
		name TEXT PRIMARY KEY
	);
	CREATE TABLE IF NOT EXISTS worksheet_rows (
		sheet   TEXT NOT NULL,
		row_num INTEGER NOT NULL,
		cells   TEXT NOT NULL,
		PRIMARY KEY (sheet, row_num)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) exists(ctx context.Context, name string) (bool, error) {
	var n string
	err := s.db.GetContext(ctx, &n, `SELECT name FROM worksheets WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) LoadAll(ctx context.Context, name string) ([][]string, error) {
	ok, err := s.exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return [][]string{}, nil
	}

	var raw []string
	err = s.db.SelectContext(ctx, &raw, `SELECT cells FROM worksheet_rows WHERE sheet = ? ORDER BY row_num`, name)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		var cells []string
		if err := json.Unmarshal([]byte(r), &cells); err != nil {
			return nil, fmt.Errorf("decode row of %s: %w", name, err)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (s *SQLiteStore) AppendRow(ctx context.Context, name string, row []string) error {
	ok, err := s.exists(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}
	if !ok {
		return fmt.Errorf("%w: append to %q: %w", sheet.ErrWrite, name, sheet.ErrSheetNotFound)
	}

	cells, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO worksheet_rows (sheet, row_num, cells)
		VALUES (?, (SELECT COALESCE(MAX(row_num), 0) + 1 FROM worksheet_rows WHERE sheet = ?), ?)`,
		name, name, string(cells))
	if err != nil {
		return fmt.Errorf("%w: append to %q: %v", sheet.ErrWrite, name, err)
	}
	return nil
}

func (s *SQLiteStore) FindRowByValue(ctx context.Context, name, value string) (int, error) {
	rows, err := s.LoadAll(ctx, name)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		for _, c := range row {
			if c == value {
				return i + 1, nil
			}
		}
	}
	return 0, sheet.ErrValueNotFound
}

func (s *SQLiteStore) UpdateCell(ctx context.Context, name string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: update %s!R%dC%d: out of range", sheet.ErrWrite, name, row, col)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}
	defer tx.Rollback()

	var raw string
	err = tx.GetContext(ctx, &raw, `SELECT cells FROM worksheet_rows WHERE sheet = ? AND row_num = ?`, name, row)
	if err != nil {
		return fmt.Errorf("%w: update %s!R%dC%d: %v", sheet.ErrWrite, name, row, col, err)
	}

	var cells []string
	if err := json.Unmarshal([]byte(raw), &cells); err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}
	for len(cells) < col {
		cells = append(cells, "")
	}
	cells[col-1] = value

	updated, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}
	_, err = tx.ExecContext(ctx, `UPDATE worksheet_rows SET cells = ? WHERE sheet = ? AND row_num = ?`, string(updated), name, row)
	if err != nil {
		return fmt.Errorf("%w: update %s!R%dC%d: %v", sheet.ErrWrite, name, row, col, err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) EnsureSheet(ctx context.Context, name string, header []string) error {
	ok, err := s.exists(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}
	if ok {
		return nil
	}

	cells, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", sheet.ErrWrite, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO worksheets (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("%w: create %q: %v", sheet.ErrWrite, name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO worksheet_rows (sheet, row_num, cells) VALUES (?, 1, ?)`, name, string(cells)); err != nil {
		return fmt.Errorf("%w: create %q: %v", sheet.ErrWrite, name, err)
	}
	return tx.Commit()
}
