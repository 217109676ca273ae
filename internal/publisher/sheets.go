package publisher

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheets publishes the ranking snapshot to a Google spreadsheet. The
// ranking lands on the Ranking sheet and the checkpoint reference on Meta, so
// the spreadsheet can link "results up to tournament X" next to the table.
type GoogleSheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleSheets creates a Sheets sink using a service-account credentials
// file.
func NewGoogleSheets(ctx context.Context, spreadsheetID, credentialsFile string) (*GoogleSheets, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading sheets credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing sheets credentials: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &GoogleSheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

var _ Publisher = (*GoogleSheets)(nil)

func (g *GoogleSheets) Publish(ctx context.Context, report Report) error {
	values := make([][]any, 0, len(report.Rows)+1)
	values = append(values, toAnyRow(Header))
	for _, row := range report.Rows {
		values = append(values, toAnyRow(row.Strings()))
	}

	if _, err := g.svc.Spreadsheets.Values.Clear(g.spreadsheetID, "Ranking", &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clearing ranking sheet: %w", err)
	}
	if _, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, "Ranking!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("updating ranking sheet: %w", err)
	}

	meta := &sheets.ValueRange{Values: [][]any{toAnyRow(report.CheckpointRow())}}
	if _, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, "Meta!A1", meta).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("updating meta sheet: %w", err)
	}

	log.Info("Published ranking snapshot to Google Sheets",
		"spreadsheet", g.spreadsheetID, "players", len(report.Rows))
	return nil
}

func toAnyRow(s []string) []any {
	row := make([]any, len(s))
	for i, v := range s {
		row[i] = v
	}
	return row
}
