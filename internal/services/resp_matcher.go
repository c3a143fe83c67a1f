package services

import (
	"context"
	"fmt"
	"strings"

	"hireflow/ats-matcher/internal/models"
)

const snippetMaxRunes = 200

// ResponsibilityMatcher checks each JD duty statement against the CV text
// and reports where it is evidenced. Items are independent; output order
// follows JD authoring order.
type ResponsibilityMatcher interface {
	Match(ctx context.Context, responsibilities []string, cvText string) ([]models.ResponsibilityMatch, error)
}

type responsibilityMatcher struct {
	scorer    SimilarityScorer
	threshold float64
}

func NewResponsibilityMatcher(scorer SimilarityScorer, threshold float64) ResponsibilityMatcher {
	return &responsibilityMatcher{
		scorer:    scorer,
		threshold: threshold,
	}
}

func (m *responsibilityMatcher) Match(ctx context.Context, responsibilities []string, cvText string) ([]models.ResponsibilityMatch, error) {
	matches := make([]models.ResponsibilityMatch, 0, len(responsibilities))
	cvSentences := SplitSentences(cvText)
	cvLower := strings.ToLower(cvText)

	for _, responsibility := range responsibilities {
		match, err := m.matchOne(ctx, responsibility, cvSentences, cvLower)
		if err != nil {
			return nil, fmt.Errorf("failed to match responsibility %q: %w", responsibility, err)
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func (m *responsibilityMatcher) matchOne(ctx context.Context, responsibility string, cvSentences []string, cvLower string) (models.ResponsibilityMatch, error) {
	match := models.ResponsibilityMatch{Responsibility: responsibility}

	// Direct phrase match is full confidence; no scorer call needed.
	if strings.Contains(cvLower, strings.ToLower(responsibility)) {
		match.FoundInCV = true
		match.ConfidenceScore = 1.0
		for _, sentence := range cvSentences {
			if strings.Contains(strings.ToLower(sentence), strings.ToLower(responsibility)) {
				match.RelevantSnippet = TruncateRunes(sentence, snippetMaxRunes)
				break
			}
		}
		return match, nil
	}

	best := 0.0
	bestSentence := ""
	for _, sentence := range cvSentences {
		score, err := m.scorer.Score(ctx, responsibility, sentence)
		if err != nil {
			return match, err
		}
		if score > best {
			best = score
			bestSentence = sentence
		}
	}

	if best > 1 {
		best = 1
	}
	match.ConfidenceScore = best
	if best >= m.threshold {
		match.FoundInCV = true
		match.RelevantSnippet = TruncateRunes(bestSentence, snippetMaxRunes)
	}

	return match, nil
}
