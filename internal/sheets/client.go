// Package sheets wraps the Google Sheets API as a read-only tabular data
// source. The rest of the application never sees the Google client types:
// rows come back as ordered string cells and failures carry a structured
// kind (see errors.go).
package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// readScope grants read-only access to spreadsheet values.
const readScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// Config holds the connection parameters for one spreadsheet.
type Config struct {
	SpreadsheetID       string
	ServiceAccountEmail string
	PrivateKey          string
}

// Configured reports whether all connection parameters are present.
func (c Config) Configured() bool {
	return c.SpreadsheetID != "" && c.ServiceAccountEmail != "" && c.PrivateKey != ""
}

// Metadata describes the spreadsheet itself, used by diagnostics.
type Metadata struct {
	Title string
}

// Client reads ranges from a single spreadsheet using service-account
// credentials. It is safe for concurrent use.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient builds a Client authenticated as the configured service account.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("sheets: connection parameters missing")
	}

	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(normalizePrivateKey(cfg.PrivateKey)),
		Scopes:     []string{readScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

// FetchRange reads the given A1-notation range (e.g. "Main!A:C") and returns
// the rows in sheet order. Cells are stringified; rows may be ragged when
// trailing cells are empty, exactly as the API returns them.
func (c *Client) FetchRange(ctx context.Context, rangeRef string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeRef).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

// FetchMetadata reads the spreadsheet properties. Diagnostics use it as a
// cheap connectivity and permission check that touches no cell data.
func (c *Client) FetchMetadata(ctx context.Context) (Metadata, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return Metadata{}, classify(err)
	}

	md := Metadata{}
	if resp.Properties != nil {
		md.Title = resp.Properties.Title
	}
	return md, nil
}

// normalizePrivateKey turns literal \n sequences back into newlines.
// Keys pasted into single-line env vars arrive escaped this way.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
