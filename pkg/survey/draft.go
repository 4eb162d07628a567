package survey

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/tgsurvey/pkg/domain"
)

// Draft is the in-progress survey as edited by the user.
// OtherUsageReason is a scratch field, it is never persisted as is.
type Draft struct {
	Name                   string
	AgeGroup               string
	UsageDuration          string
	UsageReason            []string
	OtherUsageReason       string
	ContentPreference      []string
	RegularBotsOrChannels  string
	RecommendTelegram      string
	ImprovementSuggestions string
}

// ValidationError reports missing or unexpected answers
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Has reports whether the field is missing or invalid
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.Missing, field) || slices.Contains(e.Invalid, field)
}

// textPolicy strips any markup from free-text answers
var textPolicy = bluemonday.StrictPolicy()

// Validate checks required answers and that enumerated answers come from the fixed options.
// Returns *ValidationError or nil.
func Validate(d Draft) error {
	verr := &ValidationError{}

	checkEnum := func(field, value string, options []string) {
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			verr.Missing = append(verr.Missing, field)
		case !slices.Contains(options, value):
			verr.Invalid = append(verr.Invalid, field)
		}
	}
	checkEnum("age_group", d.AgeGroup, domain.AgeGroups)
	checkEnum("usage_duration", d.UsageDuration, domain.UsageDurations)

	reasons := cleanSet(d.UsageReason)
	if len(reasons) == 0 {
		verr.Missing = append(verr.Missing, "usage_reason")
	}
	for _, r := range reasons {
		if !slices.Contains(domain.UsageReasons, r) {
			verr.Invalid = append(verr.Invalid, "usage_reason")
			break
		}
	}

	prefs := cleanSet(d.ContentPreference)
	if len(prefs) == 0 {
		verr.Missing = append(verr.Missing, "content_preference")
	}
	for _, p := range prefs {
		if !slices.Contains(domain.ContentPreferences, p) {
			verr.Invalid = append(verr.Invalid, "content_preference")
			break
		}
	}

	checkEnum("recommend_telegram", d.RecommendTelegram, domain.Recommendations)

	if len(verr.Missing) == 0 && len(verr.Invalid) == 0 {
		return nil
	}
	return verr
}

// Normalize converts a valid draft to the record submitted to the store.
// The "Other" reason is replaced by the custom answer when one is given: remaining reasons keep
// their order and the custom answer goes last. Blank optional answers become nil.
func Normalize(d Draft) domain.SurveyResponse {
	return domain.SurveyResponse{
		Name:                   optionalText(d.Name),
		AgeGroup:               strings.TrimSpace(d.AgeGroup),
		UsageDuration:          strings.TrimSpace(d.UsageDuration),
		UsageReason:            usageReasons(d.UsageReason, d.OtherUsageReason),
		ContentPreference:      cleanSet(d.ContentPreference),
		RegularBotsOrChannels:  optionalText(d.RegularBotsOrChannels),
		RecommendTelegram:      strings.TrimSpace(d.RecommendTelegram),
		ImprovementSuggestions: optionalText(d.ImprovementSuggestions),
	}
}

// usageReasons applies the "Other" substitution
func usageReasons(selected []string, other string) []string {
	reasons := cleanSet(selected)
	custom := sanitizeText(other)
	if custom == "" || !slices.Contains(reasons, domain.OtherReason) {
		return reasons
	}

	res := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if r != domain.OtherReason {
			res = append(res, r)
		}
	}
	if !slices.Contains(res, custom) {
		res = append(res, custom)
	}
	return res
}

// cleanSet trims values, drops blanks and repeated values keeping the first occurrence
func cleanSet(values []string) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(res, v) {
			continue
		}
		res = append(res, v)
	}
	return res
}

// optionalText sanitizes free text and returns nil for blank input
func optionalText(s string) *string {
	return domain.StringPtr(sanitizeText(s))
}

// sanitizeText removes markup, including entity-encoded markup. Input is unescaped before the policy
// runs, the policy output is unescaped back to plain text.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(html.UnescapeString(s))))
}
