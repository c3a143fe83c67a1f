package services

import (
	"fmt"

	"hireflow/ats-matcher/internal/models"
)

// FeedbackBuilder renders the free-text feedback strings from structured
// facts. Templates are fixed, so identical inputs always produce
// identical sentences.
type FeedbackBuilder struct{}

func NewFeedbackBuilder() *FeedbackBuilder {
	return &FeedbackBuilder{}
}

func (b *FeedbackBuilder) ExperienceFeedback(required, candidate *float64) string {
	switch {
	case required == nil && candidate == nil:
		return "Experience requirements and candidate experience could not be determined from the documents."
	case required == nil:
		return fmt.Sprintf("The JD does not state a required experience level; the candidate shows %.1f years of experience.", *candidate)
	case candidate == nil:
		return fmt.Sprintf("The JD asks for %.1f+ years of experience but no reliable experience signal was found in the resume. Treating experience as unknown.", *required)
	case *candidate >= *required:
		return fmt.Sprintf("Excellent match: candidate's %.1f years of experience meets or exceeds the JD's %.1f+ years requirement.", *candidate, *required)
	case *candidate >= *required*0.7:
		return fmt.Sprintf("Good match: candidate's %.1f years of experience is closely aligned with the JD's %.1f+ years requirement.", *candidate, *required)
	default:
		return fmt.Sprintf("Experience gap: candidate's %.1f years of experience is below the JD's %.1f+ years requirement. Consider for junior roles or if other areas compensate.", *candidate, *required)
	}
}

func (b *FeedbackBuilder) CTCFeedback(jd, cv *models.CompensationFact) string {
	if jd == nil || cv == nil {
		return "CTC information not available for one or both documents for comparison."
	}
	if jd.Currency != cv.Currency {
		return fmt.Sprintf("Warning: CTC currencies differ (JD: %s, CV: %s). Cannot compare directly.", jd.Currency, cv.Currency)
	}

	switch {
	case cv.Min >= jd.Min && cv.Max <= jd.Max:
		return fmt.Sprintf("Excellent alignment: candidate's expected CTC (%s %.0f - %.0f) is within the JD's range (%s %.0f - %.0f).",
			cv.Currency, cv.Min, cv.Max, jd.Currency, jd.Min, jd.Max)
	case cv.Max < jd.Min:
		return fmt.Sprintf("Favorable: candidate's expected CTC (%s %.0f - %.0f) is below the JD's minimum (%s %.0f).",
			cv.Currency, cv.Min, cv.Max, jd.Currency, jd.Min)
	case cv.Min > jd.Max:
		return fmt.Sprintf("Mismatch: candidate's expected CTC (%s %.0f - %.0f) is above the JD's maximum (%s %.0f). May be negotiable.",
			cv.Currency, cv.Min, cv.Max, jd.Currency, jd.Max)
	default:
		return fmt.Sprintf("Moderate overlap: candidate's expected CTC (%s %.0f - %.0f) partially overlaps the JD's range (%s %.0f - %.0f).",
			cv.Currency, cv.Min, cv.Max, jd.Currency, jd.Min, jd.Max)
	}
}

func (b *FeedbackBuilder) AcademicFeedback(required, candidate models.DegreeLevel) string {
	if required == models.DegreeNone {
		if candidate == models.DegreeNone {
			return "No academic requirement stated and no credential detected."
		}
		return fmt.Sprintf("No academic requirement stated; candidate holds a %s-level credential.", candidate)
	}
	if candidate >= required {
		return fmt.Sprintf("Academic fit: candidate's %s-level credential meets or exceeds the required %s level.", candidate, required)
	}
	if candidate == models.DegreeNone {
		return fmt.Sprintf("Academic gap: the JD requires a %s-level credential but none was detected in the resume.", required)
	}
	return fmt.Sprintf("Academic gap: candidate's %s-level credential is below the required %s level.", candidate, required)
}
