package common

import (
	"html"
	"regexp"

	"github.com/Philanthropists/phab-email-events/internal/logger"
)

func ExtractFieldsStringWithRegexp(s string, r *regexp.Regexp) map[string]string {
	match := r.FindStringSubmatch(s)
	result := make(map[string]string)
	for i, name := range r.SubexpNames() {
		if i != 0 && name != "" && i < len(match) {
			result[name] = match[i]
		}
	}

	return result
}

// ExtractField returns the named group of the first match of r in s.
func ExtractField(s string, r *regexp.Regexp, field string) (string, bool) {
	value, ok := ExtractFieldsStringWithRegexp(s, r)[field]
	return value, ok
}

// UnescapeBody turns entity-escaped delimiters (&gt;, &#39;, ...) back into
// characters so actor patterns can be matched against the visible text.
func UnescapeBody(body string) string {
	return html.UnescapeString(body)
}

func PrintVersion(commit string) {
	log := logger.GetLogger()
	if commit == "" {
		commit = "unknown"
	}

	log.Infow("phab-email-events",
		"commit", commit)
}
