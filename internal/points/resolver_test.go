package points

import (
	"context"
	"errors"
	"testing"

	"github.com/sandwichsociety/pointsite/internal/sheets"
)

// fakeFetcher implements RowFetcher from canned rows or a canned error.
type fakeFetcher struct {
	rows      [][]string
	err       error
	lastRange string
}

func (f *fakeFetcher) FetchRange(ctx context.Context, rangeRef string) ([][]string, error) {
	f.lastRange = rangeRef
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

var sampleRows = [][]string{
	{"Username", "AllTime", "Weekly"},
	{"Alice", "42", "7"},
	{"bob", "10", "3"},
}

func resolverWith(rows [][]string) (*Resolver, *fakeFetcher) {
	f := &fakeFetcher{rows: rows}
	return NewResolver(f, "Main!A:C"), f
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error = %T (%v), want *Error", err, err)
	}
	return re.Kind
}

func TestResolve_Match(t *testing.T) {
	r, f := resolverWith(sampleRows)

	rec, err := r.Resolve(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := Record{Username: "Alice", AllTime: 42, Weekly: 7, MaxAllTime: 100, MaxWeekly: 100}
	if rec != want {
		t.Errorf("Resolve() = %+v, want %+v", rec, want)
	}
	if f.lastRange != "Main!A:C" {
		t.Errorf("fetched range = %q, want %q", f.lastRange, "Main!A:C")
	}
}

func TestResolve_CaseAndWhitespaceInsensitive(t *testing.T) {
	r, _ := resolverWith(sampleRows)

	for _, input := range []string{"ALICE", "alice", "  Alice  ", "aLiCe"} {
		rec, err := r.Resolve(context.Background(), input)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", input, err)
		}
		// Stored casing wins over caller casing.
		if rec.Username != "Alice" {
			t.Errorf("Resolve(%q).Username = %q, want %q", input, rec.Username, "Alice")
		}
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	r, _ := resolverWith([][]string{
		{"Username", "AllTime", "Weekly"},
		{"Carol", "5", "1"},
		{"carol ", "99", "99"},
	})

	rec, err := r.Resolve(context.Background(), "CAROL")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rec.AllTime != 5 || rec.Username != "Carol" {
		t.Errorf("Resolve() = %+v, want first row in sheet order", rec)
	}
}

func TestResolve_HeaderRowNeverMatches(t *testing.T) {
	r, _ := resolverWith(sampleRows)

	_, err := r.Resolve(context.Background(), "Username")
	if kindOf(t, err) != KindUserNotFound {
		t.Errorf("Resolve(header value) kind = %v, want %v", kindOf(t, err), KindUserNotFound)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r, _ := resolverWith(sampleRows)

	_, err := r.Resolve(context.Background(), "carol")

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if re.Kind != KindUserNotFound {
		t.Errorf("Kind = %v, want %v", re.Kind, KindUserNotFound)
	}
	if re.AvailableUsers != "Alice, bob" {
		t.Errorf("AvailableUsers = %q, want %q", re.AvailableUsers, "Alice, bob")
	}
}

func TestResolve_NotFoundSkipsBlankRows(t *testing.T) {
	r, _ := resolverWith([][]string{
		{"Username", "AllTime", "Weekly"},
		{"Alice", "42", "7"},
		{"   ", "0", "0"},
		{},
		{"bob", "10", "3"},
	})

	_, err := r.Resolve(context.Background(), "nobody")

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if re.AvailableUsers != "Alice, bob" {
		t.Errorf("AvailableUsers = %q, want %q", re.AvailableUsers, "Alice, bob")
	}
}

func TestResolve_NotFoundNoUsers(t *testing.T) {
	r, _ := resolverWith([][]string{
		{"Username", "AllTime", "Weekly"},
		{"", "", ""},
	})

	_, err := r.Resolve(context.Background(), "anyone")

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if re.AvailableUsers != "No users found" {
		t.Errorf("AvailableUsers = %q, want %q", re.AvailableUsers, "No users found")
	}
}

func TestResolve_EmptyInput(t *testing.T) {
	r, f := resolverWith(sampleRows)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := r.Resolve(context.Background(), input)
		if kindOf(t, err) != KindInvalidInput {
			t.Errorf("Resolve(%q) kind = %v, want %v", input, kindOf(t, err), KindInvalidInput)
		}
	}
	if f.lastRange != "" {
		t.Error("Resolve with empty input should not touch the data source")
	}
}

func TestResolve_Unconfigured(t *testing.T) {
	r := NewResolver(nil, "Main!A:C")

	if r.Configured() {
		t.Error("Configured() = true with nil source")
	}
	_, err := r.Resolve(context.Background(), "Alice")
	if kindOf(t, err) != KindConfigurationMissing {
		t.Errorf("kind = %v, want %v", kindOf(t, err), KindConfigurationMissing)
	}
}

func TestResolve_SourceEmpty(t *testing.T) {
	r, _ := resolverWith(nil)

	_, err := r.Resolve(context.Background(), "Alice")
	if kindOf(t, err) != KindSourceEmpty {
		t.Errorf("kind = %v, want %v", kindOf(t, err), KindSourceEmpty)
	}
}

func TestResolve_HeaderOnlyIsSourceEmpty(t *testing.T) {
	// A lone header row means zero data rows, not an unknown user.
	r, _ := resolverWith([][]string{{"Username", "AllTime", "Weekly"}})

	_, err := r.Resolve(context.Background(), "Alice")
	if kindOf(t, err) != KindSourceEmpty {
		t.Errorf("kind = %v, want %v", kindOf(t, err), KindSourceEmpty)
	}
}

func TestResolve_LenientPointParsing(t *testing.T) {
	tests := []struct {
		name        string
		row         []string
		wantAllTime int
		wantWeekly  int
	}{
		{"empty all-time cell", []string{"dave", "", "5"}, 0, 5},
		{"non-numeric", []string{"dave", "TBD", "-"}, 0, 0},
		{"short row", []string{"dave"}, 0, 0},
		{"padded numbers", []string{"dave", " 12 ", " 8 "}, 12, 8},
		{"negative kept as parsed", []string{"dave", "-3", "2"}, -3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := resolverWith([][]string{
				{"Username", "AllTime", "Weekly"},
				tt.row,
			})

			rec, err := r.Resolve(context.Background(), "dave")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if rec.AllTime != tt.wantAllTime {
				t.Errorf("AllTime = %d, want %d", rec.AllTime, tt.wantAllTime)
			}
			if rec.Weekly != tt.wantWeekly {
				t.Errorf("Weekly = %d, want %d", rec.Weekly, tt.wantWeekly)
			}
			if rec.MaxAllTime != 100 || rec.MaxWeekly != 100 {
				t.Errorf("maxima = %d/%d, want 100/100", rec.MaxAllTime, rec.MaxWeekly)
			}
		})
	}
}

func TestResolve_SourceErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"permission denied", &sheets.Error{Kind: sheets.KindPermissionDenied, Code: 403}, KindPermissionDenied},
		{"invalid request", &sheets.Error{Kind: sheets.KindInvalidRequest, Code: 400}, KindInvalidRequest},
		{"unavailable", &sheets.Error{Kind: sheets.KindUnavailable, Code: 503}, KindTransient},
		{"cancelled", context.Canceled, KindTransient},
		{"deadline", context.DeadlineExceeded, KindTransient},
		{"plain error", errors.New("connection reset"), KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{err: tt.err}
			r := NewResolver(f, "Main!A:C")

			_, err := r.Resolve(context.Background(), "Alice")
			if kindOf(t, err) != tt.want {
				t.Errorf("kind = %v, want %v", kindOf(t, err), tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("classified error lost the underlying cause")
			}
		})
	}
}
