package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"hireflow/ats-matcher/internal/models"
)

// FieldExtractor parses normalized document text into structured facets.
// Extraction is best-effort over noisy text; absent signals come back as
// nil/empty, never as guessed values.
type FieldExtractor interface {
	ExtractFields(text string, role models.DocumentRole) models.Facets
}

type fieldExtractor struct {
	currentYear int
}

func NewFieldExtractor() FieldExtractor {
	return &fieldExtractor{currentYear: time.Now().Year()}
}

func (e *fieldExtractor) ExtractFields(text string, role models.DocumentRole) models.Facets {
	facets := models.Facets{
		Role:          role,
		Skills:        extractSkills(text),
		Compensation:  extractCompensation(text),
		DegreeLevel:   extractDegreeLevel(text),
		SoftSkillCues: extractSoftSkillCues(text),
		Title:         extractTitle(text),
	}

	if role == models.RoleJD {
		facets.Responsibilities = extractResponsibilities(text)
	}
	if role == models.RoleCV {
		facets.RoleBlocks = e.extractRoleBlocks(text)
	}

	facets.Experience = e.extractExperience(text, facets.RoleBlocks)

	return facets
}

// --- Skill extraction ---

// NormalizeSkill canonicalizes one skill mention: case-folded, outer
// punctuation stripped, whitespace collapsed, synonyms resolved.
func NormalizeSkill(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, ".,;:!?()[]{}\"'")
	s = strings.Join(strings.Fields(s), " ")
	if canonical, ok := skillSynonyms[s]; ok {
		return canonical
	}
	return s
}

var skillsSectionHeader = regexp.MustCompile(`(?i)^(?:technical\s+)?(?:skills|technologies|tech\s+stack|proficiencies|core\s+competencies)\s*[:\-]\s*(.*)$`)

// extractSkills combines taxonomy n-gram matching with skills-section list
// capture, so multi-word terms outside the taxonomy still surface when the
// document lists them explicitly.
func extractSkills(text string) []string {
	found := make(map[string]bool)

	// Taxonomy match over 1..3-gram candidates, line by line.
	for _, line := range strings.Split(text, "\n") {
		tokens := tokenize(line)
		for i := range tokens {
			for n := 1; n <= 3 && i+n <= len(tokens); n++ {
				candidate := NormalizeSkill(strings.Join(tokens[i:i+n], " "))
				if professionalSkills[candidate] {
					found[candidate] = true
				}
			}
		}
	}

	// Skills-section lists: "Skills: Python, Kafka Streams, ..." — keep
	// entries verbatim (normalized) even when unseen in the taxonomy.
	for _, line := range strings.Split(text, "\n") {
		m := skillsSectionHeader.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil || strings.TrimSpace(m[1]) == "" {
			continue
		}
		for _, item := range strings.FieldsFunc(m[1], func(r rune) bool {
			return r == ',' || r == '/' || r == ';' || r == '|' || r == '•'
		}) {
			skill := NormalizeSkill(item)
			if skill == "" || len([]rune(skill)) < 2 || len(strings.Fields(skill)) > 4 {
				continue
			}
			found[skill] = true
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// --- Experience extraction ---

var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)\b`),
	regexp.MustCompile(`(?i)(?:experience|exp)\D{0,20}?(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\s+(?:in|with)\b`),
	regexp.MustCompile(`(?i)(?:over|more than|at least|minimum(?:\s+of)?)\s+(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\b`),
}

var yearRangePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\b`)

// extractExperience looks for explicit "X years" phrases first; for CVs it
// falls back to summing role-block date ranges. Returns a nil Years when
// no reliable signal exists — unknown is not zero.
func (e *fieldExtractor) extractExperience(text string, roleBlocks []models.RoleBlock) models.ExperienceFact {
	var years []float64

	for _, pattern := range yearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				years = append(years, v)
			}
		}
	}
	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if v, err := strconv.ParseFloat(g, 64); err == nil {
				years = append(years, v)
			}
		}
	}

	if len(years) > 0 {
		maxYears := years[0]
		for _, v := range years[1:] {
			if v > maxYears {
				maxYears = v
			}
		}
		return models.ExperienceFact{Years: &maxYears}
	}

	// CV fallback: sum employment durations from dated role blocks.
	var total float64
	for _, block := range roleBlocks {
		if block.StartYear > 0 && block.EndYear >= block.StartYear {
			total += float64(block.EndYear - block.StartYear)
		}
	}
	if total > 0 {
		return models.ExperienceFact{Years: &total}
	}

	return models.ExperienceFact{}
}

// --- Compensation extraction ---

var (
	symbolAmountPattern = regexp.MustCompile(`(?i)(\brs\.?|₹|\$|€|£)\s*(\d[\d,]*(?:\.\d+)?)\s*(lpa|lakhs?|lacs?|crores?|k|thousand)?(?:\s*(?:-|to)\s*(?:\brs\.?|₹|\$|€|£)?\s*(\d[\d,]*(?:\.\d+)?)\s*(lpa|lakhs?|lacs?|crores?|k|thousand)?)?`)
	indianUnitPattern   = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)(?:\s*(?:-|to)\s*(\d[\d,]*(?:\.\d+)?))?\s*(lpa|lakhs?|lacs?|crores?)\b`)
)

// extractCompensation parses salary figures only when a currency marker or
// an unambiguous unit (LPA, lakh, crore) is present; bare numbers are
// discarded rather than guessed.
func extractCompensation(text string) *models.CompensationFact {
	lower := strings.ToLower(text)

	if m := symbolAmountPattern.FindStringSubmatch(lower); m != nil {
		minVal, okMin := parseAmount(m[2], m[3])
		if okMin {
			maxVal := minVal
			if m[4] != "" {
				unit := m[5]
				if unit == "" {
					unit = m[3]
				}
				if v, ok := parseAmount(m[4], unit); ok {
					maxVal = v
				}
			}
			return &models.CompensationFact{
				Min:      minVal,
				Max:      maxVal,
				Currency: currencyForSymbol(m[1], m[3]),
				Original: strings.TrimSpace(m[0]),
			}
		}
	}

	if m := indianUnitPattern.FindStringSubmatch(lower); m != nil {
		minVal, okMin := parseAmount(m[1], m[3])
		if okMin {
			maxVal := minVal
			if m[2] != "" {
				if v, ok := parseAmount(m[2], m[3]); ok {
					maxVal = v
				}
			}
			return &models.CompensationFact{
				Min:      minVal,
				Max:      maxVal,
				Currency: "INR",
				Original: strings.TrimSpace(m[0]),
			}
		}
	}

	return nil
}

func parseAmount(number, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(number, ",", ""), 64)
	if err != nil {
		return 0, false
	}

	switch {
	case strings.HasPrefix(unit, "lpa"), strings.HasPrefix(unit, "lakh"), strings.HasPrefix(unit, "lac"):
		v *= 100000
	case strings.HasPrefix(unit, "crore"):
		v *= 10000000
	case unit == "k", unit == "thousand":
		v *= 1000
	}
	return v, true
}

func currencyForSymbol(symbol, unit string) string {
	switch {
	case strings.HasPrefix(unit, "lpa"), strings.HasPrefix(unit, "lakh"),
		strings.HasPrefix(unit, "lac"), strings.HasPrefix(unit, "crore"):
		return "INR"
	}
	switch symbol {
	case "$":
		return "USD"
	case "€":
		return "EUR"
	case "£":
		return "GBP"
	case "₹", "rs", "rs.":
		return "INR"
	default:
		return "USD"
	}
}

// --- Responsibility extraction (JD only) ---

const maxResponsibilities = 15

// extractResponsibilities keeps duty-like statements in JD authoring
// order: bullets, sentences with duty verbs, and requirement phrasing.
// Boilerplate (legal, benefits) is dropped via the stoplist.
func extractResponsibilities(text string) []string {
	seen := make(map[string]bool)
	var responsibilities []string

	for _, line := range SplitBullets(text) {
		for _, sentence := range SplitSentences(line.Text) {
			statement := strings.TrimSpace(sentence)
			n := len([]rune(statement))
			if n < 20 || n > 200 {
				continue
			}

			lowerStatement := strings.ToLower(statement)
			if isBoilerplate(lowerStatement) {
				continue
			}
			if !line.IsBullet && !hasResponsibilityCue(lowerStatement) {
				continue
			}

			key := lowerStatement
			if seen[key] {
				continue
			}
			seen[key] = true
			responsibilities = append(responsibilities, statement)

			if len(responsibilities) == maxResponsibilities {
				return responsibilities
			}
		}
	}

	return responsibilities
}

func hasResponsibilityCue(lower string) bool {
	padded := " " + lower
	for _, verb := range responsibilityVerbs {
		if strings.Contains(padded, " "+verb) {
			return true
		}
	}
	for _, indicator := range requirementIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func isBoilerplate(lower string) bool {
	for _, phrase := range boilerplateStoplist {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// --- Role-title extraction (CV only) ---

var titleKeywords = []string{
	"engineer", "developer", "programmer", "architect", "manager",
	"analyst", "consultant", "designer", "scientist", "administrator",
	"lead", "intern", "specialist", "director",
}

var roleDateRange = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|to)\s*((?:19|20)\d{2}|present|current|now)\b`)

// extractRoleBlocks segments a CV into prior-role sections. A line that
// names a recognizable job title starts a block; following lines up to the
// next title line form its description.
func (e *fieldExtractor) extractRoleBlocks(text string) []models.RoleBlock {
	lines := strings.Split(text, "\n")
	var blocks []models.RoleBlock
	var current *models.RoleBlock

	flush := func() {
		if current != nil {
			current.Description = strings.TrimSpace(current.Description)
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for _, raw := range lines {
		isBullet := bulletPrefix.MatchString(raw)
		line := strings.TrimSpace(bulletPrefix.ReplaceAllString(raw, ""))
		if line == "" {
			continue
		}

		// Bulleted lines describe duties; they never open a new role.
		if title, company, ok := parseTitleLine(line); ok && !isBullet {
			flush()
			current = &models.RoleBlock{Title: title, Company: company}
			if start, end, found := e.parseDateRange(line); found {
				current.StartYear, current.EndYear = start, end
			}
			continue
		}

		if current != nil {
			if current.StartYear == 0 {
				if start, end, found := e.parseDateRange(line); found {
					current.StartYear, current.EndYear = start, end
				}
			}
			if current.Description != "" {
				current.Description += "\n"
			}
			current.Description += line
		}
	}
	flush()

	return blocks
}

// parseTitleLine recognizes "Senior Engineer at Acme (2020-2024)" style
// lines. Short lines containing a title keyword qualify; everything after
// "at" or the first comma is the company.
func parseTitleLine(line string) (title, company string, ok bool) {
	if len([]rune(line)) > 90 {
		return "", "", false
	}

	lower := strings.ToLower(line)
	hasKeyword := false
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return "", "", false
	}

	// Duty sentences mention titles too; require a heading-like shape.
	if strings.HasSuffix(line, ".") && len(strings.Fields(line)) > 8 {
		return "", "", false
	}

	title = roleDateRange.ReplaceAllString(line, "")
	title = strings.Trim(title, " ()-–,")
	if idx := strings.Index(strings.ToLower(title), " at "); idx > 0 {
		company = strings.TrimSpace(title[idx+4:])
		title = strings.TrimSpace(title[:idx])
	} else if idx := strings.Index(title, ","); idx > 0 {
		company = strings.TrimSpace(title[idx+1:])
		title = strings.TrimSpace(title[:idx])
	}

	if title == "" {
		return "", "", false
	}
	return title, company, true
}

func (e *fieldExtractor) parseDateRange(line string) (start, end int, ok bool) {
	m := roleDateRange.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}

	switch strings.ToLower(m[2]) {
	case "present", "current", "now":
		end = e.currentYear
	default:
		end, err = strconv.Atoi(m[2])
		if err != nil {
			return 0, 0, false
		}
	}

	if end < start {
		return 0, 0, false
	}
	return start, end, true
}

// --- Academic extraction ---

func extractDegreeLevel(text string) models.DegreeLevel {
	lower := strings.ToLower(text)
	for _, entry := range degreeKeywords {
		for _, kw := range entry.Keywords {
			if containsWord(lower, kw) {
				return models.DegreeLevel(entry.Level)
			}
		}
	}
	return models.DegreeNone
}

// containsWord reports a substring match bounded by non-word characters,
// so "master" does not fire on "mastered".
func containsWord(text, word string) bool {
	for idx := strings.Index(text, word); idx >= 0; {
		before := idx == 0 || !isWordRune(rune(text[idx-1]))
		afterIdx := idx + len(word)
		after := afterIdx >= len(text) || !isWordRune(rune(text[afterIdx]))
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// --- Soft-skill cues ---

func extractSoftSkillCues(text string) []string {
	lower := strings.ToLower(text)
	var cues []string
	for _, cue := range softSkillCues {
		if strings.Contains(lower, cue) {
			cues = append(cues, cue)
		}
	}
	return cues
}

// --- Title extraction ---

// extractTitle picks the first heading-sized line naming a recognizable
// role within the opening lines, falling back to the first content line.
func extractTitle(text string) string {
	firstLine := ""
	scanned := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if firstLine == "" {
			firstLine = line
		}

		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) && len([]rune(line)) <= 90 {
				return TruncateRunes(line, 80)
			}
		}

		scanned++
		if scanned >= 10 {
			break
		}
	}

	return TruncateRunes(firstLine, 80)
}
