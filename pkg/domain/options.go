package domain

// OtherReason is the usage reason placeholder replaced by a free-text answer before persistence
const OtherReason = "Other"

// fixed answer options offered by the survey form
var (
	AgeGroups = []string{"Under 18", "18-24", "25-34", "35-44", "45+"}

	UsageDurations = []string{"Less than 6 months", "6 months - 1 year", "1-3 years", "More than 3 years"}

	Recommendations = []string{"Yes", "No", "Maybe"}

	UsageReasons = []string{
		"Messaging friends & family",
		"Joining groups & communities",
		"Following channels",
		"Using bots",
		"Sharing files & media",
		"Privacy & security",
		OtherReason,
	}

	ContentPreferences = []string{
		"📰 News & Updates",
		"📽 Movies & Web Series",
		"📚 E-books & Study Material",
		"🎓 Educational Content",
		"🎵 Music & Podcasts",
		"🎮 Gaming",
		"😂 Memes & Entertainment",
		"💼 Jobs & Career",
		"💰 Crypto & Finance",
		"🛍 Deals & Shopping",
		"💻 Tech & Programming",
		"⚽ Sports",
	}
)

// Options groups all answer options, used by the form and the options API
type Options struct {
	AgeGroups          []string `json:"age_groups"`
	UsageDurations     []string `json:"usage_durations"`
	Recommendations    []string `json:"recommendations"`
	UsageReasons       []string `json:"usage_reasons"`
	ContentPreferences []string `json:"content_preferences"`
}

// SurveyOptions returns the fixed answer options
func SurveyOptions() Options {
	return Options{
		AgeGroups:          AgeGroups,
		UsageDurations:     UsageDurations,
		Recommendations:    Recommendations,
		UsageReasons:       UsageReasons,
		ContentPreferences: ContentPreferences,
	}
}

