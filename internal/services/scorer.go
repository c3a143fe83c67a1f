package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"hireflow/ats-matcher/internal/models"
)

// Fixed facet weights. Skills and experience dominate; the six weights
// sum to 1.
const (
	weightSkills        = 0.35
	weightExperience    = 0.25
	weightRoleAlignment = 0.15
	weightCTC           = 0.10
	weightAcademic      = 0.10
	weightSoftSkills    = 0.05

	// Fuzzy matches earn half credit relative to exact matches.
	fuzzyMatchWeight = 0.5

	neutralScore = 50.0
)

// ScoringEngine combines per-facet signals into the six-factor breakdown
// and the weighted overall score. Pure computation: same inputs, same
// outputs.
type ScoringEngine interface {
	Score(ctx context.Context, jd, cv models.Facets, skillMatch models.SkillMatch, respMatches []models.ResponsibilityMatch) (models.ScoreBreakdown, int, error)
}

type scoringEngine struct {
	scorer SimilarityScorer
}

func NewScoringEngine(scorer SimilarityScorer) ScoringEngine {
	return &scoringEngine{scorer: scorer}
}

func (s *scoringEngine) Score(ctx context.Context, jd, cv models.Facets, skillMatch models.SkillMatch, respMatches []models.ResponsibilityMatch) (models.ScoreBreakdown, int, error) {
	roleAlignment, err := s.roleAlignmentScore(ctx, jd, cv, respMatches)
	if err != nil {
		return models.ScoreBreakdown{}, 0, fmt.Errorf("failed to score role alignment: %w", err)
	}

	breakdown := models.ScoreBreakdown{
		Skills:        skillsScore(jd.Skills, skillMatch),
		Experience:    experienceScore(jd.Experience.Years, cv.Experience.Years),
		CTC:           ctcScore(jd.Compensation, cv.Compensation),
		RoleAlignment: roleAlignment,
		SoftSkills:    softSkillsScore(jd.SoftSkillCues, cv.SoftSkillCues),
		Academic:      academicScore(jd.DegreeLevel, cv.DegreeLevel),
	}

	overall := breakdown.Skills*weightSkills +
		breakdown.Experience*weightExperience +
		breakdown.RoleAlignment*weightRoleAlignment +
		breakdown.CTC*weightCTC +
		breakdown.Academic*weightAcademic +
		breakdown.SoftSkills*weightSoftSkills

	return breakdown, int(math.Round(clampScore(overall))), nil
}

// skillsScore: full credit for exact matches, discounted credit for fuzzy
// ones. An empty JD skill set requires nothing, so it scores 100.
func skillsScore(jdSkills []string, match models.SkillMatch) float64 {
	if len(jdSkills) == 0 {
		return 100
	}
	credit := float64(len(match.Matched)) + fuzzyMatchWeight*float64(len(match.Fuzzy))
	return clampScore(100 * credit / float64(len(jdSkills)))
}

// experienceScore: full credit at or above the requirement, linear credit
// below it. Either side unknown is neutral — never a penalty.
func experienceScore(required, candidate *float64) float64 {
	if required == nil || candidate == nil {
		return neutralScore
	}
	if *required <= 0 || *candidate >= *required {
		return 100
	}
	return clampScore(100 * *candidate / *required)
}

// ctcScore: full credit inside the offered band, near-full below it,
// credit decaying with overshoot above it. Missing or incomparable data
// is neutral.
func ctcScore(jd, cv *models.CompensationFact) float64 {
	if jd == nil || cv == nil {
		return neutralScore
	}
	if jd.Currency != cv.Currency {
		return 20
	}

	switch {
	case cv.Min >= jd.Min && cv.Max <= jd.Max:
		return 100
	case cv.Max < jd.Min:
		return 90
	case cv.Min > jd.Max:
		if jd.Max <= 0 {
			return 20
		}
		overshoot := (cv.Min - jd.Max) / jd.Max
		return clampScore(math.Max(20, 90-overshoot*100))
	default:
		// Partial overlap with the band.
		band := jd.Max - jd.Min
		if band <= 0 {
			return neutralScore
		}
		overlap := math.Min(cv.Max, jd.Max) - math.Max(cv.Min, jd.Min)
		if overlap <= 0 {
			return neutralScore
		}
		return clampScore(50 + 50*overlap/band)
	}
}

// roleAlignmentScore: best similarity between the JD profile (title plus
// responsibilities) and any prior CV role. Without role blocks the mean
// responsibility confidence stands in; without either signal, neutral.
func (s *scoringEngine) roleAlignmentScore(ctx context.Context, jd, cv models.Facets, respMatches []models.ResponsibilityMatch) (float64, error) {
	jdProfile := strings.TrimSpace(jd.Title + "\n" + strings.Join(jd.Responsibilities, "\n"))
	if jdProfile == "" {
		return neutralScore, nil
	}

	if len(cv.RoleBlocks) == 0 {
		if len(respMatches) == 0 {
			return neutralScore, nil
		}
		total := 0.0
		for _, m := range respMatches {
			total += m.ConfidenceScore
		}
		return clampScore(100 * total / float64(len(respMatches))), nil
	}

	best := 0.0
	for _, block := range cv.RoleBlocks {
		roleText := strings.TrimSpace(block.Title + "\n" + block.Description)
		score, err := s.scorer.Score(ctx, jdProfile, roleText)
		if err != nil {
			return 0, err
		}
		if score > best {
			best = score
		}
	}
	return clampScore(100 * best), nil
}

// softSkillsScore: fraction of the JD's soft-skill cues also evidenced in
// the CV. A JD with no cues requires nothing.
func softSkillsScore(jdCues, cvCues []string) float64 {
	if len(jdCues) == 0 {
		return 100
	}
	cvSet := make(map[string]bool, len(cvCues))
	for _, cue := range cvCues {
		cvSet[cue] = true
	}
	both := 0
	for _, cue := range jdCues {
		if cvSet[cue] {
			both++
		}
	}
	return clampScore(100 * float64(both) / float64(len(jdCues)))
}

// academicScore: meeting or exceeding the required degree level is full
// credit; below it, linear credit on the ordinal scale. No stated
// requirement is neutral.
func academicScore(required, candidate models.DegreeLevel) float64 {
	if required == models.DegreeNone {
		return neutralScore
	}
	if candidate >= required {
		return 100
	}
	return clampScore(100 * float64(candidate) / float64(required))
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
