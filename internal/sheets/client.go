// Package sheets membungkus Google Sheets API sebagai penyimpanan tabular
// bersama. Baris 0 setiap sheet adalah header, baris 1..n adalah data.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
)

// Client adalah klien spreadsheet rekapan
type Client struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewClient membuat klien Sheets dengan kredensial service account
func NewClient(ctx context.Context, credentialsPath, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is empty")
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	logger.GetAppLogger().WithField("spreadsheetId", spreadsheetID).
		Info("📋 [SHEETS] Klien spreadsheet siap")

	return &Client{
		srv:           srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

// FetchRows mengambil seluruh baris sebuah sheet (termasuk header di baris 0).
// Setiap sel dikonversi ke string; baris pendek tidak dipad.
func (c *Client) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, sheetName).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %s: %w", sheetName, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// AppendRow menambahkan satu baris data di akhir sheet.
// Layer ini tidak menjaga keunikan; dedup adalah tanggung jawab pemanggil.
func (c *Client) AppendRow(ctx context.Context, sheetName string, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{values},
	}

	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", sheetName, err)
	}

	return nil
}

// ReplaceRows menimpa seluruh isi sheet dengan rows (dipakai operasi
// pembersihan duplikat, bukan jalur tulis utama).
func (c *Client) ReplaceRows(ctx context.Context, sheetName string, rows [][]string) error {
	_, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, sheetName,
		&sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", sheetName, err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	vr := &sheets.ValueRange{Values: values}

	_, err = c.srv.Spreadsheets.Values.Update(c.spreadsheetID, sheetName+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to replace rows in %s: %w", sheetName, err)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"sheet":    sheetName,
		"rowCount": len(rows),
	}).Info("📋 [SHEETS] Seluruh baris sheet ditimpa ulang")

	return nil
}
