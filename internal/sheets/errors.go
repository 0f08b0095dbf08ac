package sheets

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrorKind discriminates data-source failures so callers can branch on a
// structured code instead of matching message text.
type ErrorKind int

const (
	// KindUnavailable covers transient transport failures: network errors,
	// 5xx responses, cancelled or timed-out calls.
	KindUnavailable ErrorKind = iota

	// KindPermissionDenied means the service account cannot read the
	// spreadsheet (not shared, or credentials rejected).
	KindPermissionDenied

	// KindInvalidRequest means the spreadsheet ID or range is wrong.
	KindInvalidRequest
)

// Error is a classified data-source failure.
type Error struct {
	Kind ErrorKind
	Code int // HTTP status from the API, 0 when not applicable
	Err  error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("sheets: %s (HTTP %d): %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("sheets: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (k ErrorKind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission denied"
	case KindInvalidRequest:
		return "invalid request"
	default:
		return "unavailable"
	}
}

// classify wraps an error from the Sheets API into an *Error with a
// discriminable kind, derived from the HTTP status code.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Kind: KindPermissionDenied, Code: apiErr.Code, Err: err}
		case http.StatusBadRequest, http.StatusNotFound:
			return &Error{Kind: KindInvalidRequest, Code: apiErr.Code, Err: err}
		default:
			return &Error{Kind: KindUnavailable, Code: apiErr.Code, Err: err}
		}
	}

	// Context cancellation, DNS failures, connection resets and the like.
	return &Error{Kind: KindUnavailable, Err: err}
}
