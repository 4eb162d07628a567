package dashboard

import (
	"regexp"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/umputun/tgsurvey/pkg/domain"
)

// maxTopContent limits the content preference series
const maxTopContent = 10

// labelPrefix matches a leading decorative token (emoji) and one space after it
var labelPrefix = regexp.MustCompile(`^\S+ `)

// frequencies counts values keeping the order in which they were first seen
type frequencies struct {
	counts *orderedmap.OrderedMap[string, int]
}

func newFrequencies() *frequencies {
	return &frequencies{counts: orderedmap.New[string, int]()}
}

func (f *frequencies) add(value string) {
	count, _ := f.counts.Get(value)
	f.counts.Set(value, count+1)
}

// series emits label/count pairs in first-seen order
func (f *frequencies) series() []domain.LabelCount {
	res := make([]domain.LabelCount, 0, f.counts.Len())
	for pair := f.counts.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, domain.LabelCount{Label: pair.Key, Count: pair.Value})
	}
	return res
}

// Distribution counts a single-valued field over responses, in first-seen order
func Distribution(responses []domain.SurveyResponse, field func(domain.SurveyResponse) string) []domain.LabelCount {
	freq := newFrequencies()
	for _, r := range responses {
		freq.add(field(r))
	}
	return freq.series()
}

// TopContent counts every content preference of every response, strips the emoji prefix from
// labels and returns up to 10 most frequent ones. Equal counts keep first-seen order.
func TopContent(responses []domain.SurveyResponse) []domain.LabelCount {
	freq := newFrequencies()
	for _, r := range responses {
		for _, c := range r.ContentPreference {
			freq.add(c)
		}
	}

	res := freq.series()
	for i := range res {
		res[i].Label = labelPrefix.ReplaceAllString(res[i].Label, "")
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Count > res[j].Count })
	if len(res) > maxTopContent {
		res = res[:maxTopContent]
	}
	return res
}

// BuildCharts derives all chart series from one page of responses.
// Only the given page is counted, not the whole data set.
func BuildCharts(responses []domain.SurveyResponse) domain.Charts {
	return domain.Charts{
		AgeGroups:      Distribution(responses, func(r domain.SurveyResponse) string { return r.AgeGroup }),
		Recommendation: Distribution(responses, func(r domain.SurveyResponse) string { return r.RecommendTelegram }),
		UsageDuration:  Distribution(responses, func(r domain.SurveyResponse) string { return r.UsageDuration }),
		TopContent:     TopContent(responses),
	}
}
