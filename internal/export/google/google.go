package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"kakebo/internal/core"
	"kakebo/internal/ledger"
)

// Client mirrors stored transactions into a Google Sheets spreadsheet, one
// row per transaction on a year-named sheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ ledger.TransactionExporter = (*Client)(nil)

// NewFromEnv creates a Sheets exporter using environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Credentials: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional: GOOGLE_SHEET_NAME (default "Transactions"); the current year is
// prefixed, e.g. "2026 Transactions".
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	base := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if base == "" {
		base = "Transactions"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     fmt.Sprintf("%d %s", time.Now().Year(), base),
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return service, nil
}

// Export implements ledger.TransactionExporter by appending one row:
// date, type, category label, amount in euros, notes.
func (c *Client) Export(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	euros := float64(t.Amount.Cents) / 100.0
	row := []any{
		t.Date.Format("2006-01-02"),
		string(t.Type),
		core.CategoryLabel(t.Category),
		euros,
		t.Notes,
	}

	rng := fmt.Sprintf("%s!A:E", c.sheetName)
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, rng, &gsheet.ValueRange{Values: [][]any{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row to sheet %s: %w", c.sheetName, err)
	}

	slog.InfoContext(ctx, "Transaction exported to Google Sheets",
		"id", t.ID,
		"sheet", c.sheetName)

	return nil
}
