package term

import (
	"testing"

	"canvasnotes/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func record(name, code string) models.CourseRecord {
	return models.CourseRecord{Name: strPtr(name), CourseCode: strPtr(code)}
}

func TestExtractExplicitTerm(t *testing.T) {
	rec := record("Intro to Biology (Fall 2024)", "BIO 101")
	rec.Term = &models.TermRecord{Name: "Autumn Semester 2024/25"}

	if got := Extract(rec); got != "Autumn Semester 2024/25" {
		t.Errorf("Expected explicit term name to win, got %q", got)
	}
}

func TestExtractEmptyTermObjectFallsThrough(t *testing.T) {
	rec := record("Intro to Biology (Fall 2024)", "BIO 101")
	rec.Term = &models.TermRecord{}

	if got := Extract(rec); got != "Fall 2024" {
		t.Errorf("Expected empty term object to fall through to the name, got %q", got)
	}
}

func TestExtractHeuristics(t *testing.T) {
	cases := []struct {
		label string
		name  string
		code  string
		want  string
	}{
		{"season and year in name", "Intro to Go (Fall 2024)", "", "Fall 2024"},
		{"season and year in code", "Intro to Go", "CS101 Spring 2023", "Spring 2023"},
		{"name season beats code bare year", "History Fall 2024", "HIST 2099", "Fall 2024"},
		{"code season beats name bare year", "History 2023", "HIST Winter 2025", "Winter 2025"},
		{"casing kept as captured", "chem (fall 2024)", "", "fall 2024"},
		{"missing space after season", "Summer2025 Studio", "", "Summer 2025"},
		{"bare year in name", "History Seminar 2023", "", "2023"},
		{"first bare year wins within a field", "From 1914 to 1918", "", "1914"},
		{"bare year in code only", "Linear Algebra", "MATH 2023", "2023"},
		{"name bare year beats code bare year", "Drawing 2021", "ART 2022", "2021"},
		{"first four digits of longer runs", "Advanced Topics 10100", "", "1010"},
		{"term id marker", "History Term: 42", "", "Term: 42"},
		{"term marker without digits", "History Term: TBD", "", Fallback},
		{"no signal at all", "Independent Study", "IS", Fallback},
	}

	for _, tc := range cases {
		if got := Extract(record(tc.name, tc.code)); got != tc.want {
			t.Errorf("%s: Extract(%q, %q) = %q, want %q", tc.label, tc.name, tc.code, got, tc.want)
		}
	}
}

func TestExtractMissingFields(t *testing.T) {
	if got := Extract(models.CourseRecord{}); got != Fallback {
		t.Errorf("Expected %q for a record with no fields, got %q", Fallback, got)
	}
}
