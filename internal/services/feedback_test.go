package services

import (
	"strings"
	"testing"

	"hireflow/ats-matcher/internal/models"
)

func TestExperienceFeedback(t *testing.T) {
	b := NewFeedbackBuilder()

	cases := []struct {
		name      string
		required  *float64
		candidate *float64
		contains  string
	}{
		{"both unknown", nil, nil, "could not be determined"},
		{"requirement unknown", nil, floatPtr(6), "does not state a required experience level"},
		{"candidate unknown", floatPtr(5), nil, "Treating experience as unknown"},
		{"meets", floatPtr(5), floatPtr(7), "Excellent match"},
		{"close", floatPtr(10), floatPtr(8), "Good match"},
		{"gap", floatPtr(10), floatPtr(3), "Experience gap"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.ExperienceFeedback(tc.required, tc.candidate)
			if !strings.Contains(got, tc.contains) {
				t.Fatalf("feedback %q does not contain %q", got, tc.contains)
			}
		})
	}
}

func TestExperienceFeedbackDeterministic(t *testing.T) {
	b := NewFeedbackBuilder()
	first := b.ExperienceFeedback(floatPtr(5), floatPtr(7))
	for i := 0; i < 3; i++ {
		if got := b.ExperienceFeedback(floatPtr(5), floatPtr(7)); got != first {
			t.Fatalf("feedback varied between calls: %q vs %q", got, first)
		}
	}
}

func TestCTCFeedback(t *testing.T) {
	b := NewFeedbackBuilder()
	band := func(min, max float64, currency string) *models.CompensationFact {
		return &models.CompensationFact{Min: min, Max: max, Currency: currency}
	}

	cases := []struct {
		name     string
		jd, cv   *models.CompensationFact
		contains string
	}{
		{"missing", band(100000, 150000, "USD"), nil, "not available"},
		{"currency mismatch", band(100000, 150000, "USD"), band(1200000, 1500000, "INR"), "currencies differ"},
		{"within", band(100000, 150000, "USD"), band(110000, 140000, "USD"), "Excellent alignment"},
		{"below", band(100000, 150000, "USD"), band(70000, 80000, "USD"), "Favorable"},
		{"above", band(100000, 150000, "USD"), band(200000, 220000, "USD"), "above the JD's maximum"},
		{"overlap", band(100000, 150000, "USD"), band(130000, 180000, "USD"), "Moderate overlap"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.CTCFeedback(tc.jd, tc.cv)
			if !strings.Contains(got, tc.contains) {
				t.Fatalf("feedback %q does not contain %q", got, tc.contains)
			}
		})
	}
}

func TestAcademicFeedback(t *testing.T) {
	b := NewFeedbackBuilder()

	cases := []struct {
		name                string
		required, candidate models.DegreeLevel
		contains            string
	}{
		{"no requirement no credential", models.DegreeNone, models.DegreeNone, "No academic requirement"},
		{"no requirement with credential", models.DegreeNone, models.DegreeMaster, "master-level credential"},
		{"meets", models.DegreeBachelor, models.DegreeMaster, "Academic fit"},
		{"missing credential", models.DegreeBachelor, models.DegreeNone, "none was detected"},
		{"below", models.DegreeMaster, models.DegreeBachelor, "below the required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.AcademicFeedback(tc.required, tc.candidate)
			if !strings.Contains(got, tc.contains) {
				t.Fatalf("feedback %q does not contain %q", got, tc.contains)
			}
		})
	}
}
