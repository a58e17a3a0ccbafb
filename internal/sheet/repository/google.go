package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/sirumat/record-service/internal/sheet"
)

// GoogleStore implements sheet.Store against a Google spreadsheet. One value
// per call, no batching: every operation is a single blocking API call, which
// matches the one-interaction-at-a-time usage this service targets.
type GoogleStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewGoogleStore(svc *sheets.Service, spreadsheetID string) *GoogleStore {
	return &GoogleStore{svc: svc, spreadsheetID: spreadsheetID}
}

func (g *GoogleStore) LoadAll(ctx context.Context, name string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, name).Context(ctx).Do()
	if err != nil {
		// The API rejects the range when the worksheet does not exist. That
		// reads as "no data yet", not as a failure.
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusBadRequest {
			return [][]string{}, nil
		}
		return nil, fmt.Errorf("load %q: %w", name, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, len(r))
		for i, c := range r {
			row[i] = fmt.Sprint(c)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (g *GoogleStore) AppendRow(ctx context.Context, name string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toValues(row)}}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, name, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: append to %q: %v", sheet.ErrWrite, name, err)
	}
	return nil
}

func (g *GoogleStore) FindRowByValue(ctx context.Context, name, value string) (int, error) {
	rows, err := g.LoadAll(ctx, name)
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

func (g *GoogleStore) UpdateCell(ctx context.Context, name string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: update %s!R%dC%d: out of range", sheet.ErrWrite, name, row, col)
	}

	rng := fmt.Sprintf("%s!%s%d", name, colLetter(col), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", sheet.ErrWrite, rng, err)
	}
	return nil
}

func (g *GoogleStore) EnsureSheet(ctx context.Context, name string, header []string) error {
	ss, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("list worksheets: %w", err)
	}
	for _, ws := range ss.Sheets {
		if ws.Properties.Title == name {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: name,
					GridProperties: &sheets.GridProperties{
						RowCount:    1000,
						ColumnCount: 10,
					},
				},
			},
		}},
	}
	if _, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: create %q: %v", sheet.ErrWrite, name, err)
	}
	return g.AppendRow(ctx, name, header)
}

func toValues(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}

// colLetter converts a 1-indexed column to its A1 letter form.
func colLetter(col int) string {
	s := ""
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}
