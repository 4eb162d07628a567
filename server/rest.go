package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/tgsurvey/pkg/dashboard"
	"github.com/umputun/tgsurvey/pkg/domain"
)

// responseRecord is the JSON representation of a stored survey response
type responseRecord struct {
	ID                     string    `json:"id"`
	Name                   *string   `json:"name"`
	AgeGroup               string    `json:"age_group"`
	UsageDuration          string    `json:"usage_duration"`
	UsageReason            []string  `json:"usage_reason"`
	ContentPreference      []string  `json:"content_preference"`
	RegularBotsOrChannels  *string   `json:"regular_bots_or_channels"`
	RecommendTelegram      string    `json:"recommend_telegram"`
	ImprovementSuggestions *string   `json:"improvement_suggestions"`
	SubmittedAt            time.Time `json:"submitted_at"`
}

// resultsResponse is one page of results with the charts derived from it
type resultsResponse struct {
	Page       int              `json:"page"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Records    []responseRecord `json:"records"`
	Charts     *domain.Charts   `json:"charts,omitempty"`
}

// statusHandler returns server status, including store health
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"database": "ok",
	}

	code := http.StatusOK
	if err := s.db.Ping(r.Context()); err != nil {
		log.Printf("[WARN] status check failed: %v", err)
		status["status"] = "degraded"
		status["database"] = "unavailable"
		code = http.StatusServiceUnavailable
	}
	renderJSON(w, r, code, status)
}

// optionsHandler returns the fixed answer options of the survey form
func (s *Server) optionsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, domain.SurveyOptions())
}

// resultsAPIHandler returns a page of results as JSON
func (s *Server) resultsAPIHandler(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	d := dashboard.New(s.db)
	d.Mount(r.Context())
	if page != 1 {
		if _, failed := d.State().(dashboard.Failed); !failed && !d.SetPage(r.Context(), page) {
			renderError(w, r, fmt.Errorf("page %d out of range", page), http.StatusBadRequest)
			return
		}
	}

	if _, failed := d.State().(dashboard.Failed); failed {
		renderError(w, r, errors.New(dashboard.NoticeLoadFailed), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, toResultsResponse(d.Snapshot()))
}

// toResultsResponse converts a snapshot to the JSON response, charts are omitted for an empty store
func toResultsResponse(snap dashboard.Snapshot) resultsResponse {
	res := resultsResponse{
		Page:       snap.Page,
		Total:      snap.Total,
		TotalPages: snap.TotalPages(),
		Records:    make([]responseRecord, 0, len(snap.Responses)),
	}
	for _, resp := range snap.Responses {
		res.Records = append(res.Records, responseRecord(resp))
	}
	if !snap.Empty() {
		charts := snap.Charts()
		res.Charts = &charts
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
