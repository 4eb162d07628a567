package survey

import (
	"context"
	"errors"
	"log"

	"github.com/umputun/tgsurvey/pkg/domain"
)

//go:generate moq -out mocks/inserter.go -pkg mocks -skip-ensure -fmt goimports . Inserter

// Inserter stores a new survey response, assigning its ID and submission time
type Inserter interface {
	Insert(ctx context.Context, resp *domain.SurveyResponse) error
}

// Status of the last submit attempt
type Status int

// submit statuses
const (
	StatusEditing Status = iota
	StatusRejected
	StatusSubmitted
	StatusFailed
)

// user-facing notices
const (
	NoticeSubmitted = "Thank you! Your response has been recorded."
	NoticeRejected  = "Please answer all required questions."
	NoticeFailed    = "Failed to submit the survey. Please try again."
)

// Outcome is the result of a submit attempt.
// Record is set for StatusSubmitted, Err holds *ValidationError for StatusRejected
// and the store error for StatusFailed.
type Outcome struct {
	Status Status
	Record *domain.SurveyResponse
	Err    error
}

// Notice returns a message to show to the user
func (o Outcome) Notice() string {
	switch o.Status {
	case StatusSubmitted:
		return NoticeSubmitted
	case StatusRejected:
		return NoticeRejected
	case StatusFailed:
		return NoticeFailed
	default:
		return ""
	}
}

// ValidationErrors returns the validation details for a rejected outcome
func (o Outcome) ValidationErrors() *ValidationError {
	var verr *ValidationError
	if errors.As(o.Err, &verr) {
		return verr
	}
	return nil
}

// Form owns a survey draft and submits it
type Form struct {
	store Inserter
	draft Draft
}

// NewForm makes a form with an empty draft
func NewForm(store Inserter) *Form {
	return &Form{store: store}
}

// Draft returns the current draft
func (f *Form) Draft() Draft {
	return f.draft
}

// SetDraft replaces the current draft
func (f *Form) SetDraft(d Draft) {
	f.draft = d
}

// Reset clears the draft
func (f *Form) Reset() {
	f.draft = Draft{}
}

// Submit validates the draft and makes exactly one insert attempt.
// On success the draft is reset, on any failure it is kept for another try.
func (f *Form) Submit(ctx context.Context) Outcome {
	if err := Validate(f.draft); err != nil {
		return Outcome{Status: StatusRejected, Err: err}
	}

	rec := Normalize(f.draft)
	if err := f.store.Insert(ctx, &rec); err != nil {
		log.Printf("[WARN] failed to submit survey response: %v", err)
		return Outcome{Status: StatusFailed, Err: err}
	}

	log.Printf("[DEBUG] survey response %s submitted", rec.ID)
	f.Reset()
	return Outcome{Status: StatusSubmitted, Record: &rec}
}
