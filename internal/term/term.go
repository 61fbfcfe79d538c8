package term

import (
	"regexp"
	"strings"

	"canvasnotes/internal/models"
)

// Fallback is the label used when no term signal can be found at all.
const Fallback = "Current Term"

var (
	seasonYearPattern = regexp.MustCompile(`(?i)(Fall|Spring|Summer|Winter)\s*(\d{4})`)
	yearPattern       = regexp.MustCompile(`\d{4}`)
	termIDPattern     = regexp.MustCompile(`Term:\s*(\d+)`)
)

// Extract derives a display label for a course's academic term. The
// checks run in strict order and the first match wins:
//
//  1. an explicit term object with a non-empty name, verbatim;
//  2. "<Season> <4-digit year>" in the name, then in the course code,
//     case-insensitive, returned as captured;
//  3. a bare 4-digit number in the name, then in the course code;
//  4. the digits following a literal "Term:" in the name;
//  5. Fallback.
//
// Every season+year check runs before any bare-year check, so a season
// match in the course code beats a bare year in the name. This
// ordering is a compatibility contract; see the package tests before
// touching it.
func Extract(rec models.CourseRecord) string {
	if rec.Term != nil && rec.Term.Name != "" {
		return rec.Term.Name
	}

	name := strOr(rec.Name)
	code := strOr(rec.CourseCode)

	for _, field := range [...]string{name, code} {
		if m := seasonYearPattern.FindStringSubmatch(field); m != nil {
			return m[1] + " " + m[2]
		}
	}

	for _, field := range [...]string{name, code} {
		if m := yearPattern.FindString(field); m != "" {
			return m
		}
	}

	if strings.Contains(name, "Term:") {
		if m := termIDPattern.FindStringSubmatch(name); m != nil {
			return "Term: " + m[1]
		}
	}

	return Fallback
}

func strOr(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}
