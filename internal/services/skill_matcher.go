package services

import (
	"sort"

	"hireflow/ats-matcher/internal/models"
)

// SkillMatcher computes the set relationship between JD-required skills
// and CV skills: exact matches first, then fuzzy matches on whatever is
// left. Inputs are assumed normalized (see NormalizeSkill).
type SkillMatcher interface {
	Match(jdSkills, cvSkills []string) models.SkillMatch
}

type skillMatcher struct {
	fuzzyThreshold float64
}

func NewSkillMatcher(fuzzyThreshold float64) SkillMatcher {
	return &skillMatcher{fuzzyThreshold: fuzzyThreshold}
}

func (m *skillMatcher) Match(jdSkills, cvSkills []string) models.SkillMatch {
	result := models.SkillMatch{
		Matched: []string{},
		Fuzzy:   []string{},
		Missing: []string{},
		Extra:   []string{},
	}

	cvRemaining := make(map[string]bool, len(cvSkills))
	for _, skill := range cvSkills {
		cvRemaining[skill] = true
	}

	// Pass 1: exact (normalized) equality.
	var jdRemaining []string
	for _, jdSkill := range sortedCopy(jdSkills) {
		if cvRemaining[jdSkill] {
			result.Matched = append(result.Matched, jdSkill)
			delete(cvRemaining, jdSkill)
		} else {
			jdRemaining = append(jdRemaining, jdSkill)
		}
	}

	// Pass 2: fuzzy, greedy. Each JD skill takes at most one CV skill —
	// the highest token-sort ratio above the threshold, lexicographically
	// first on exact ties so results are reproducible.
	for _, jdSkill := range jdRemaining {
		bestSkill := ""
		bestRatio := 0.0

		for _, cvSkill := range sortedKeys(cvRemaining) {
			ratio := TokenSortRatio(jdSkill, cvSkill)
			if ratio > bestRatio {
				bestRatio = ratio
				bestSkill = cvSkill
			}
		}

		if bestSkill != "" && bestRatio >= m.fuzzyThreshold {
			result.Fuzzy = append(result.Fuzzy, jdSkill)
			delete(cvRemaining, bestSkill)
		} else {
			result.Missing = append(result.Missing, jdSkill)
		}
	}

	result.Extra = sortedKeys(cvRemaining)
	return result
}

func sortedCopy(skills []string) []string {
	out := make([]string, len(skills))
	copy(out, skills)
	sort.Strings(out)
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
