package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sandwichsociety/pointsite/internal/logging"
	"github.com/sandwichsociety/pointsite/internal/web/templates"
)

// handleHome renders the landing page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(s.site).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render home", "error", err)
	}
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// checkPointsRequest is the JSON body of a points lookup.
type checkPointsRequest struct {
	Username string `json:"username"`
}

// checkPointsResponse is the success envelope for a points lookup.
type checkPointsResponse struct {
	Username   string `json:"username"`
	AllTime    int    `json:"allTime"`
	Weekly     int    `json:"weekly"`
	MaxAllTime int    `json:"maxAllTime"`
	MaxWeekly  int    `json:"maxWeekly"`
	Success    bool   `json:"success"`
}

// handleCheckPoints resolves a username to its point totals. The username
// arrives as a JSON body from the page script, or as a form field when the
// client posts the form directly.
func (s *Server) handleCheckPoints(w http.ResponseWriter, r *http.Request) {
	var username string
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req checkPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
			return
		}
		username = req.Username
	} else {
		username = r.FormValue("username")
	}

	rec, err := s.resolver.Resolve(r.Context(), username)
	if err != nil {
		s.respondResolveError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("points resolved",
		"username", rec.Username,
		"all_time", rec.AllTime,
		"weekly", rec.Weekly,
	)

	writeJSON(w, http.StatusOK, checkPointsResponse{
		Username:   rec.Username,
		AllTime:    rec.AllTime,
		Weekly:     rec.Weekly,
		MaxAllTime: rec.MaxAllTime,
		MaxWeekly:  rec.MaxWeekly,
		Success:    true,
	})
}

// handleDebug reports which data-source connection parameters are set.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prober.Env())
}

// handleTestConnection runs the metadata-only connectivity check.
func (s *Server) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	report := s.prober.TestConnection(r.Context())
	status := http.StatusOK
	if !report.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, report)
}

// handleProbe runs the step-by-step read probe.
func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	report := s.prober.Probe(r.Context())
	status := http.StatusOK
	if !report.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, report)
}
