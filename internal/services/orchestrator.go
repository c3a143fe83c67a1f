package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hireflow/ats-matcher/internal/models"
	"hireflow/ats-matcher/pkg/errors"
)

// MatchStage labels the step of the pipeline a request is in; a failed
// request reports the stage it died at.
type MatchStage string

const (
	StageReceived   MatchStage = "received"
	StageIngesting  MatchStage = "ingesting"
	StageExtracting MatchStage = "extracting"
	StageMatching   MatchStage = "matching"
	StageScoring    MatchStage = "scoring"
	StageCompleted  MatchStage = "completed"
	StageFailed     MatchStage = "failed"
)

// Orchestrator runs the full pipeline for one (JD, CV) pair: ingest,
// extract, match, score, assemble. Every stage is synchronous and
// short-circuits on first error; there are no retries and no partial
// results. All per-request state lives on the stack of Match.
type Orchestrator interface {
	Match(ctx context.Context, jd, cv *models.Document) (*models.MatchResult, models.MatchMetadata, error)
}

type orchestrator struct {
	ingestor   IngestorService
	extractor  FieldExtractor
	skillMatch SkillMatcher
	respMatch  ResponsibilityMatcher
	scoring    ScoringEngine
	feedback   *FeedbackBuilder
	limiter    *MatchLimiter
	timeout    time.Duration
	logger     *zap.Logger
}

func NewOrchestrator(
	ingestor IngestorService,
	extractor FieldExtractor,
	skillMatcher SkillMatcher,
	respMatcher ResponsibilityMatcher,
	scoring ScoringEngine,
	feedback *FeedbackBuilder,
	limiter *MatchLimiter,
	timeout time.Duration,
	logger *zap.Logger,
) Orchestrator {
	return &orchestrator{
		ingestor:   ingestor,
		extractor:  extractor,
		skillMatch: skillMatcher,
		respMatch:  respMatcher,
		scoring:    scoring,
		feedback:   feedback,
		limiter:    limiter,
		timeout:    timeout,
		logger:     logger,
	}
}

func (o *orchestrator) Match(ctx context.Context, jd, cv *models.Document) (*models.MatchResult, models.MatchMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := o.limiter.Acquire(ctx); err != nil {
		return nil, models.MatchMetadata{}, errors.ErrTimeout("the matching engine is busy; try again shortly").Wrap(err)
	}
	defer o.limiter.Release()

	stage := StageReceived
	log := o.logger.With(zap.String("jd_file", jd.Filename), zap.String("cv_file", cv.Filename))

	fail := func(err error) (*models.MatchResult, models.MatchMetadata, error) {
		if ctx.Err() == context.DeadlineExceeded {
			err = errors.ErrTimeout("processing exceeded the time limit; try smaller files").Wrap(err)
		}
		log.Warn("match failed", zap.String("stage", string(stage)), zap.Error(err))
		return nil, models.MatchMetadata{}, err
	}

	// Ingest.
	stage = StageIngesting
	var err error
	jd.Text, err = o.ingestor.ExtractText(jd.Raw, jd.MediaType, jd.Filename)
	if err != nil {
		return fail(err)
	}
	cv.Text, err = o.ingestor.ExtractText(cv.Raw, cv.MediaType, cv.Filename)
	if err != nil {
		return fail(err)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// Extract.
	stage = StageExtracting
	jdFacets := o.extractor.ExtractFields(jd.Text, models.RoleJD)
	cvFacets := o.extractor.ExtractFields(cv.Text, models.RoleCV)
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// Match.
	stage = StageMatching
	skillMatch := o.skillMatch.Match(jdFacets.Skills, cvFacets.Skills)
	respMatches, err := o.respMatch.Match(ctx, jdFacets.Responsibilities, cv.Text)
	if err != nil {
		return fail(err)
	}

	// Score.
	stage = StageScoring
	breakdown, overall, err := o.scoring.Score(ctx, jdFacets, cvFacets, skillMatch, respMatches)
	if err != nil {
		return fail(err)
	}

	stage = StageCompleted
	extras, truncated := capExtras(skillMatch.Extra)

	result := &models.MatchResult{
		OverallScore:          overall,
		MatchedSkills:         skillMatch.Matched,
		FuzzyMatchedSkills:    skillMatch.Fuzzy,
		MissingJDSkills:       skillMatch.Missing,
		ExtraResumeSkills:     extras,
		ExtraSkillsTruncated:  truncated,
		ScoreBreakdown:        breakdown,
		ExperienceFeedback:    o.feedback.ExperienceFeedback(jdFacets.Experience.Years, cvFacets.Experience.Years),
		CTCFeedback:           o.feedback.CTCFeedback(jdFacets.Compensation, cvFacets.Compensation),
		AcademicFeedback:      o.feedback.AcademicFeedback(jdFacets.DegreeLevel, cvFacets.DegreeLevel),
		ResponsibilityMatches: respMatches,
	}

	metadata := models.MatchMetadata{
		JDFilename:              jd.Filename,
		CVFilename:              cv.Filename,
		JDSkillsCount:           len(jdFacets.Skills),
		CVSkillsCount:           len(cvFacets.Skills),
		JDExperienceYears:       jdFacets.Experience.Years,
		CVExperienceYears:       cvFacets.Experience.Years,
		JDResponsibilitiesCount: len(jdFacets.Responsibilities),
		ProcessingNote:          models.ProcessingNote,
	}

	log.Info("match completed",
		zap.Int("overall_score", overall),
		zap.Int("jd_skills", len(jdFacets.Skills)),
		zap.Int("cv_skills", len(cvFacets.Skills)),
		zap.Int("responsibilities", len(respMatches)),
	)

	return result, metadata, nil
}

func capExtras(extras []string) ([]string, int) {
	if len(extras) <= models.ExtraSkillsDisplayCap {
		return extras, 0
	}
	return extras[:models.ExtraSkillsDisplayCap], len(extras) - models.ExtraSkillsDisplayCap
}
