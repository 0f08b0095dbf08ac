package points

import "fmt"

// Kind discriminates resolver failures. Every failed Resolve call returns an
// *Error carrying exactly one of these; callers branch on the kind, never on
// message text.
type Kind int

const (
	// KindInvalidInput means the caller supplied an empty username.
	KindInvalidInput Kind = iota

	// KindConfigurationMissing means the data-source connection is not
	// configured in this deployment.
	KindConfigurationMissing

	// KindSourceEmpty means the source returned no rows at all.
	KindSourceEmpty

	// KindUserNotFound means no data row matched the normalized username.
	KindUserNotFound

	// KindPermissionDenied means the source rejected the read for lack of
	// access.
	KindPermissionDenied

	// KindInvalidRequest means the spreadsheet ID or range is wrong.
	KindInvalidRequest

	// KindTransient covers everything else: network failures, 5xx responses,
	// cancelled or timed-out calls. Retrying is the caller's decision.
	KindTransient
)

// Message returns the user-facing description for the kind.
func (k Kind) Message() string {
	switch k {
	case KindInvalidInput:
		return "Username is required"
	case KindConfigurationMissing:
		return "Google Sheets configuration missing. Please set up environment variables."
	case KindSourceEmpty:
		return "No data found in the sheet"
	case KindUserNotFound:
		return "Username not found. Please check your username or contact support."
	case KindPermissionDenied:
		return "Permission denied. Please check Google Sheets sharing permissions."
	case KindInvalidRequest:
		return "Invalid sheet ID or range. Please check your configuration."
	default:
		return "Failed to fetch points data. Please try again later."
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindSourceEmpty:
		return "source_empty"
	case KindUserNotFound:
		return "user_not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "transient"
	}
}

// Error is a failed resolution. For KindUserNotFound, AvailableUsers holds
// the diagnostic list of known usernames in source order.
type Error struct {
	Kind           Kind
	AvailableUsers string
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("points: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("points: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }
