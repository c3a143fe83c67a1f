package models

// ExtraSkillsDisplayCap bounds how many extra CV skills are listed in the
// response; the remainder is reported as a count.
const ExtraSkillsDisplayCap = 10

// SkillMatch is the outcome of comparing JD-required skills with CV skills.
type SkillMatch struct {
	Matched []string `json:"matched_skills"`
	Fuzzy   []string `json:"fuzzy_matched_skills"`
	Missing []string `json:"missing_jd_skills"`
	Extra   []string `json:"extra_resume_skills"`
}

// ResponsibilityMatch records whether one JD duty statement is evidenced
// in the CV. Output order follows JD authoring order.
type ResponsibilityMatch struct {
	Responsibility  string  `json:"responsibility"`
	FoundInCV       bool    `json:"found_in_cv"`
	RelevantSnippet string  `json:"relevant_snippet"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// ScoreBreakdown holds the six per-facet sub-scores, each in [0,100].
type ScoreBreakdown struct {
	Skills        float64 `json:"skills"`
	Experience    float64 `json:"experience"`
	CTC           float64 `json:"ctc"`
	RoleAlignment float64 `json:"role_alignment"`
	SoftSkills    float64 `json:"soft_skills"`
	Academic      float64 `json:"academic"`
}

// MatchResult is the canonical response schema for one (JD, CV) pair.
// Built once per request, immutable afterwards.
type MatchResult struct {
	OverallScore          int                   `json:"overall_score"`
	MatchedSkills         []string              `json:"matched_skills"`
	FuzzyMatchedSkills    []string              `json:"fuzzy_matched_skills"`
	MissingJDSkills       []string              `json:"missing_jd_skills"`
	ExtraResumeSkills     []string              `json:"extra_resume_skills"`
	ExtraSkillsTruncated  int                   `json:"extra_resume_skills_truncated"`
	ScoreBreakdown        ScoreBreakdown        `json:"score_breakdown"`
	ExperienceFeedback    string                `json:"experience_feedback"`
	CTCFeedback           string                `json:"ctc_feedback"`
	AcademicFeedback      string                `json:"academic_alignment_feedback"`
	ResponsibilityMatches []ResponsibilityMatch `json:"jd_responsibilities_matched_in_cv"`
}

// MatchMetadata accompanies a successful match response.
type MatchMetadata struct {
	JDFilename              string   `json:"jd_filename"`
	CVFilename              string   `json:"cv_filename"`
	JDSkillsCount           int      `json:"jd_skills_count"`
	CVSkillsCount           int      `json:"cv_skills_count"`
	JDExperienceYears       *float64 `json:"jd_experience_years"`
	CVExperienceYears       *float64 `json:"cv_experience_years"`
	JDResponsibilitiesCount int      `json:"jd_responsibilities_count"`
	ProcessingNote          string   `json:"processing_note"`
}

// MatchResponse is the success envelope for POST /api/ats/match.
type MatchResponse struct {
	Status      string        `json:"status"`
	MatchResult *MatchResult  `json:"match_result"`
	Metadata    MatchMetadata `json:"metadata"`
}

// ErrorResponse is the failure envelope shared by all endpoints.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ParseResponse is the envelope for POST /api/ats/parse.
type ParseResponse struct {
	Status      string        `json:"status"`
	TextPreview string        `json:"text_preview"`
	Facets      ParsedFacets  `json:"facets"`
	Metadata    ParseMetadata `json:"metadata"`
}

// ParsedFacets is the wire form of Facets for the parse endpoint.
type ParsedFacets struct {
	Skills           []string          `json:"skills"`
	ExperienceYears  *float64          `json:"experience_years"`
	Compensation     *CompensationFact `json:"compensation,omitempty"`
	Responsibilities []string          `json:"responsibilities,omitempty"`
	RoleBlocks       []RoleBlock       `json:"role_blocks,omitempty"`
	DegreeLevel      string            `json:"degree_level"`
	SoftSkillCues    []string          `json:"soft_skill_cues"`
}

type ParseMetadata struct {
	Filename       string `json:"filename"`
	FileType       string `json:"file_type"`
	IsJD           bool   `json:"is_jd"`
	TextLength     int    `json:"text_length"`
	ProcessingNote string `json:"processing_note"`
}

// ProcessingNote is returned with every response that touched an upload.
const ProcessingNote = "Files processed in-memory only. No data stored on server."
