package server

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/umputun/tgsurvey/pkg/dashboard"
	"github.com/umputun/tgsurvey/pkg/domain"
	"github.com/umputun/tgsurvey/pkg/survey"
)

const (
	// partial template names
	templateSurveyForm = "survey-form"
	templateDashboard  = "dashboard"
	templateNotice     = "notice"

	// target for load failure notices, keeps the displayed results in place
	resultsNoticeTarget = "#results-notice"

	noticeSuccess = "success"
	noticeError   = "error"
)

// surveyView holds data for the survey form
type surveyView struct {
	ActivePage string
	Options    domain.Options
	Draft      survey.Draft
	Notice     string
	NoticeKind string
	Errors     *survey.ValidationError
}

// resultsView holds data for the results dashboard
type resultsView struct {
	ActivePage  string
	Page        int
	Total       int
	TotalPages  int
	PageNumbers []int
	Responses   []domain.SurveyResponse
	Charts      domain.Charts
	Empty       bool
	Notice      string
}

// noticeView holds data for a standalone notice
type noticeView struct {
	Notice     string
	NoticeKind string
}

// isHTMX checks if request is made by htmx
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// pageParam reads the 1-based page from query, missing page means the first one
func pageParam(r *http.Request) (int, error) {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q", pageStr)
	}
	return page, nil
}

// intParam reads a non-negative int from query, returns 0 if missing or invalid
func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// draftFromForm builds a survey draft from submitted form values
func draftFromForm(form url.Values) survey.Draft {
	return survey.Draft{
		Name:                   form.Get("name"),
		AgeGroup:               form.Get("age_group"),
		UsageDuration:          form.Get("usage_duration"),
		UsageReason:            form["usage_reason"],
		OtherUsageReason:       form.Get("other_usage_reason"),
		ContentPreference:      form["content_preference"],
		RegularBotsOrChannels:  form.Get("regular_bots_or_channels"),
		RecommendTelegram:      form.Get("recommend_telegram"),
		ImprovementSuggestions: form.Get("improvement_suggestions"),
	}
}

// surveyPageHandler displays the empty survey form
func (s *Server) surveyPageHandler(w http.ResponseWriter, _ *http.Request) {
	view := surveyView{ActivePage: "survey", Options: domain.SurveyOptions()}
	if err := s.renderPage(w, pageSurvey, view); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// submitSurveyHandler validates and stores a submitted survey.
// htmx requests get the form partial back, plain posts get the whole page.
func (s *Server) submitSurveyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	form := survey.NewForm(s.db)
	form.SetDraft(draftFromForm(r.PostForm))
	outcome := form.Submit(r.Context())

	view := surveyView{
		ActivePage: "survey",
		Options:    domain.SurveyOptions(),
		Draft:      form.Draft(),
		Notice:     outcome.Notice(),
		NoticeKind: noticeError,
		Errors:     outcome.ValidationErrors(),
	}

	code := http.StatusOK
	switch outcome.Status {
	case survey.StatusSubmitted:
		view.NoticeKind = noticeSuccess
	case survey.StatusRejected:
		code = http.StatusUnprocessableEntity
	case survey.StatusFailed:
		code = http.StatusInternalServerError
	}

	if isHTMX(r) {
		s.renderPartial(w, code, templateSurveyForm, view)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := s.renderPage(w, pageSurvey, view); err != nil {
		log.Printf("[ERROR] failed to render survey page: %v", err)
	}
}

// resultsHandler displays the results dashboard.
// A full page load mounts the dashboard and moves to the requested page, htmx navigation
// restores the dashboard from the page it was sent from.
func (s *Server) resultsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		page = 1
	}

	if isHTMX(r) {
		if err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.navigateResults(w, r, page)
		return
	}

	d := dashboard.New(s.db)
	d.Mount(r.Context())
	if page != 1 {
		d.SetPage(r.Context(), page)
	}

	if err := s.renderPage(w, pageResults, newResultsView(d)); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// navigateResults switches the dashboard page for htmx requests.
// Responds with 204 if the page doesn't change and retargets the notice on load failure,
// so the results already shown stay untouched in both cases.
func (s *Server) navigateResults(w http.ResponseWriter, r *http.Request, page int) {
	current, total := intParam(r, "current"), intParam(r, "total")

	var d *dashboard.Dashboard
	if total > 0 {
		d = dashboard.Restore(s.db, current, total)
		if !d.SetPage(r.Context(), page) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
	} else {
		// total unknown, load the first page to learn it
		d = dashboard.New(s.db)
		d.Mount(r.Context())
		if page != 1 {
			d.SetPage(r.Context(), page)
		}
	}

	// client total may be stale, the fresh count can leave the requested page past the end
	if snap := d.Snapshot(); snap.TotalPages() > 0 && snap.Page > snap.TotalPages() {
		d.SetPage(r.Context(), 1)
	}

	if failed, ok := d.State().(dashboard.Failed); ok {
		w.Header().Set("HX-Retarget", resultsNoticeTarget)
		w.Header().Set("HX-Reswap", "innerHTML")
		s.renderPartial(w, http.StatusOK, templateNotice, noticeView{Notice: failed.Reason, NoticeKind: noticeError})
		return
	}

	s.renderPartial(w, http.StatusOK, templateDashboard, newResultsView(d))
}

// newResultsView prepares dashboard data for templates
func newResultsView(d *dashboard.Dashboard) resultsView {
	snap := d.Snapshot()
	view := resultsView{
		ActivePage:  "results",
		Page:        snap.Page,
		Total:       snap.Total,
		TotalPages:  snap.TotalPages(),
		PageNumbers: dashboard.PageNumbers(snap.TotalPages()),
		Responses:   snap.Responses,
		Empty:       snap.Empty(),
	}
	if !view.Empty {
		view.Charts = snap.Charts()
	}
	if failed, ok := d.State().(dashboard.Failed); ok {
		view.Notice = failed.Reason
	}
	return view
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data interface{}) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// renderPartial renders a partial template with the given status code
func (s *Server) renderPartial(w http.ResponseWriter, code int, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := s.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("[ERROR] failed to render %s: %v", templateName, err)
	}
}

// respondWithError logs the error and sends a plain text error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	log.Printf("[ERROR] %s: %v", message, err)
	http.Error(w, message, code)
}
