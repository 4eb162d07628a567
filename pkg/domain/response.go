package domain

import "time"

// SurveyResponse represents a single submitted survey
type SurveyResponse struct {
	ID                     string
	Name                   *string
	AgeGroup               string
	UsageDuration          string
	UsageReason            []string
	ContentPreference      []string
	RegularBotsOrChannels  *string
	RecommendTelegram      string
	ImprovementSuggestions *string
	SubmittedAt            time.Time
}

// LabelCount is a single point of a chart series
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Charts holds chart-ready series derived from one page of responses
type Charts struct {
	AgeGroups      []LabelCount `json:"age_groups"`
	Recommendation []LabelCount `json:"recommendation"`
	UsageDuration  []LabelCount `json:"usage_duration"`
	TopContent     []LabelCount `json:"top_content"`
}

// Empty returns true if there is nothing to chart
func (c Charts) Empty() bool {
	return len(c.AgeGroups) == 0 && len(c.Recommendation) == 0 &&
		len(c.UsageDuration) == 0 && len(c.TopContent) == 0
}

// StringPtr returns a pointer to s, or nil for the empty string
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
