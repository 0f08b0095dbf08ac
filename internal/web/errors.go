package web

// errors.go maps resolver failures onto HTTP responses.
//
// The resolver surfaces a tagged error kind; the mapping here is the only
// place status codes and client-facing messages are decided. Technical
// details stay in the server-side log, keyed by request ID.

import (
	"errors"
	"net/http"

	"github.com/sandwichsociety/pointsite/internal/logging"
	"github.com/sandwichsociety/pointsite/internal/points"
)

// errorResponse is the JSON failure envelope for the points API.
// AvailableUsers is populated only on not-found, as a debugging aid.
type errorResponse struct {
	Error          string `json:"error"`
	AvailableUsers string `json:"availableUsers,omitempty"`
}

// respondResolveError writes the HTTP response for a failed points lookup.
func (s *Server) respondResolveError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	resp := errorResponse{Error: points.KindTransient.Message()}

	var re *points.Error
	if errors.As(err, &re) {
		status = statusForKind(re.Kind)
		resp.Error = re.Kind.Message()
		resp.AvailableUsers = re.AvailableUsers
	}

	logging.FromContext(r.Context()).Warn("points lookup failed",
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
	)

	writeJSON(w, status, resp)
}

// statusForKind maps the resolver's error taxonomy to HTTP status codes.
func statusForKind(k points.Kind) int {
	switch k {
	case points.KindInvalidInput, points.KindInvalidRequest:
		return http.StatusBadRequest
	case points.KindUserNotFound, points.KindSourceEmpty:
		return http.StatusNotFound
	case points.KindPermissionDenied:
		return http.StatusForbidden
	default:
		// ConfigurationMissing and Transient
		return http.StatusInternalServerError
	}
}
