// Package points resolves a username to its point totals from the community
// spreadsheet. The resolver is stateless: every call performs one read
// against the data source and builds a fresh record.
package points

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sandwichsociety/pointsite/internal/sheets"
)

// Progress-bar ceilings. Fixed by the reward program, never derived from
// sheet data.
const (
	MaxAllTimePoints = 100
	MaxWeeklyPoints  = 100
)

// Record is the resolved result for one user. Username carries the value as
// stored in the sheet, not the caller's casing.
type Record struct {
	Username   string `json:"username"`
	AllTime    int    `json:"allTime"`
	Weekly     int    `json:"weekly"`
	MaxAllTime int    `json:"maxAllTime"`
	MaxWeekly  int    `json:"maxWeekly"`
}

// RowFetcher is the outbound contract to the tabular data source: an ordered
// sequence of rows, each an ordered sequence of cell values. Implemented by
// sheets.Client; tests supply fakes.
type RowFetcher interface {
	FetchRange(ctx context.Context, rangeRef string) ([][]string, error)
}

// Resolver maps usernames to point records. A nil source marks an
// unconfigured deployment: the site still serves pages, and every Resolve
// call fails with KindConfigurationMissing until the sheet is wired up.
type Resolver struct {
	source    RowFetcher
	readRange string
}

// NewResolver builds a Resolver reading the given A1-notation range.
// source may be nil when the data source is not configured.
func NewResolver(source RowFetcher, readRange string) *Resolver {
	return &Resolver{source: source, readRange: readRange}
}

// Configured reports whether the resolver has a data source.
func (r *Resolver) Configured() bool { return r.source != nil }

// Resolve looks up rawUsername in the sheet.
//
// Matching is case-insensitive and whitespace-trimmed against column 0 of
// every row after the header (row 0); the first matching row in sheet order
// wins. Point cells that are empty or non-numeric count as 0 rather than
// failing the lookup.
func (r *Resolver) Resolve(ctx context.Context, rawUsername string) (Record, error) {
	username := strings.TrimSpace(rawUsername)
	if username == "" {
		return Record{}, &Error{Kind: KindInvalidInput}
	}

	if r.source == nil {
		return Record{}, &Error{Kind: KindConfigurationMissing}
	}

	rows, err := r.source.FetchRange(ctx, r.readRange)
	if err != nil {
		return Record{}, classifySourceError(err)
	}

	// Row 0 is reserved for the header, so a single row means zero data
	// rows: as empty as a source with no rows at all.
	if len(rows) <= 1 {
		return Record{}, &Error{Kind: KindSourceEmpty}
	}

	want := strings.ToLower(username)
	for i, row := range rows {
		if i == 0 {
			// Header row, regardless of content.
			continue
		}
		if strings.ToLower(strings.TrimSpace(cell(row, 0))) != want {
			continue
		}
		return Record{
			Username:   cell(row, 0),
			AllTime:    parsePoints(cell(row, 1)),
			Weekly:     parsePoints(cell(row, 2)),
			MaxAllTime: MaxAllTimePoints,
			MaxWeekly:  MaxWeeklyPoints,
		}, nil
	}

	return Record{}, &Error{
		Kind:           KindUserNotFound,
		AvailableUsers: availableUsers(rows),
	}
}

// classifySourceError translates the data-source error taxonomy into the
// resolver's. The source surfaces structured kinds, so no message text is
// inspected here.
func classifySourceError(err error) error {
	var se *sheets.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case sheets.KindPermissionDenied:
			return &Error{Kind: KindPermissionDenied, Err: err}
		case sheets.KindInvalidRequest:
			return &Error{Kind: KindInvalidRequest, Err: err}
		}
	}
	return &Error{Kind: KindTransient, Err: err}
}

// availableUsers joins every non-empty username from the data rows, in sheet
// order, as an operator debugging aid attached to not-found errors.
func availableUsers(rows [][]string) string {
	var names []string
	for _, row := range rows[1:] {
		if name := strings.TrimSpace(cell(row, 0)); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "No users found"
	}
	return strings.Join(names, ", ")
}

// cell returns the i-th cell of a possibly ragged row.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// parsePoints reads a point cell leniently: empty or non-numeric cells count
// as 0. Sheets under active manual editing contain placeholders like "-" or
// "TBD", and a garbled cell must not break the whole lookup.
func parsePoints(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
