package server

import (
	"encoding/json"
	"html/template"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// placeholder shown for absent optional answers
const notAnswered = "N/A"

// templateFuncs returns helpers available in all templates
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"optional":  optional,
		"joinList":  joinList,
		"timeAgo":   timeAgo,
		"timeStamp": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05 UTC") },
		"toJSON":    toJSON,
		"contains":  slices.Contains[[]string, string],
		"add":       func(a, b int) int { return a + b },
		"sub":       func(a, b int) int { return a - b },
	}
}

// optional returns the value or the placeholder for absent answers
func optional(s *string) string {
	if s == nil || *s == "" {
		return notAnswered
	}
	return *s
}

// joinList joins a multi-select answer, empty list shown as the placeholder
func joinList(values []string) string {
	if len(values) == 0 {
		return notAnswered
	}
	return strings.Join(values, ", ")
}

// timeAgo formats time relative to now, e.g. "3 minutes ago"
func timeAgo(t time.Time) string {
	if t.IsZero() {
		return notAnswered
	}
	return humanize.Time(t)
}

// toJSON encodes chart series for data attributes
func toJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARN] can't encode template data to JSON: %v", err)
		return "[]"
	}
	return string(data)
}
