package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/tgsurvey/pkg/domain"
)

// ResponseRepository handles survey response storage
type ResponseRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// responseSQL represents a survey response for SQL operations, nil pointers are NULL columns
type responseSQL struct {
	ID                     string     `db:"id"`
	Name                   *string    `db:"name"`
	AgeGroup               string     `db:"age_group"`
	UsageDuration          string     `db:"usage_duration"`
	UsageReason            stringsSQL `db:"usage_reason"`
	ContentPreference      stringsSQL `db:"content_preference"`
	RegularBotsOrChannels  *string    `db:"regular_bots_or_channels"`
	RecommendTelegram      string     `db:"recommend_telegram"`
	ImprovementSuggestions *string    `db:"improvement_suggestions"`
	SubmittedAt            time.Time  `db:"submitted_at"`
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = stringsSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string list", value)
	}
	return json.Unmarshal(data, (*[]string)(s))
}

const responseColumns = `id, name, age_group, usage_duration, usage_reason, content_preference,
	regular_bots_or_channels, recommend_telegram, improvement_suggestions, submitted_at`

// NewResponseRepository creates a new survey response repository
func NewResponseRepository(db *sqlx.DB) *ResponseRepository {
	return &ResponseRepository{db: db, now: time.Now}
}

// Insert stores a new response, assigning its ID and submission time
func (r *ResponseRepository) Insert(ctx context.Context, resp *domain.SurveyResponse) error {
	rec := responseSQL{
		ID:                     uuid.NewString(),
		Name:                   resp.Name,
		AgeGroup:               resp.AgeGroup,
		UsageDuration:          resp.UsageDuration,
		UsageReason:            stringsSQL(resp.UsageReason),
		ContentPreference:      stringsSQL(resp.ContentPreference),
		RegularBotsOrChannels:  resp.RegularBotsOrChannels,
		RecommendTelegram:      resp.RecommendTelegram,
		ImprovementSuggestions: resp.ImprovementSuggestions,
		SubmittedAt:            r.now().UTC(),
	}

	query := `
		INSERT INTO survey_responses (` + responseColumns + `)
		VALUES (:id, :name, :age_group, :usage_duration, :usage_reason, :content_preference,
			:regular_bots_or_channels, :recommend_telegram, :improvement_suggestions, :submitted_at)
	`

	// lock errors mean nothing was written, only those are retried. Any other failure ends
	// the loop after a single attempt.
	var insertErr error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, rec)
		if isLockError(err) {
			return err
		}
		insertErr = err
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	if insertErr != nil {
		return fmt.Errorf("insert response: %w", insertErr)
	}

	resp.ID = rec.ID
	resp.SubmittedAt = rec.SubmittedAt
	return nil
}

// Ping verifies the database connection
func (r *ResponseRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Count returns the total number of responses
func (r *ResponseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM survey_responses"); err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return count, nil
}

// SelectRange returns responses ordered by submission time, newest first,
// between zero-based inclusive offsets from and to
func (r *ResponseRepository) SelectRange(ctx context.Context, from, to int) ([]domain.SurveyResponse, error) {
	if from < 0 || to < from {
		return []domain.SurveyResponse{}, nil
	}

	query := r.db.Rebind(`
		SELECT ` + responseColumns + `
		FROM survey_responses
		ORDER BY submitted_at DESC, id DESC
		LIMIT ? OFFSET ?
	`)

	var recs []responseSQL
	if err := r.db.SelectContext(ctx, &recs, query, to-from+1, from); err != nil {
		return nil, fmt.Errorf("select responses %d-%d: %w", from, to, err)
	}

	res := make([]domain.SurveyResponse, len(recs))
	for i := range recs {
		res[i] = recs[i].toDomain()
	}
	return res, nil
}

// toDomain converts responseSQL to domain.SurveyResponse
func (r *responseSQL) toDomain() domain.SurveyResponse {
	return domain.SurveyResponse{
		ID:                     r.ID,
		Name:                   r.Name,
		AgeGroup:               r.AgeGroup,
		UsageDuration:          r.UsageDuration,
		UsageReason:            []string(r.UsageReason),
		ContentPreference:      []string(r.ContentPreference),
		RegularBotsOrChannels:  r.RegularBotsOrChannels,
		RecommendTelegram:      r.RecommendTelegram,
		ImprovementSuggestions: r.ImprovementSuggestions,
		SubmittedAt:            r.SubmittedAt.UTC(),
	}
}
