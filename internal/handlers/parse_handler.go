package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hireflow/ats-matcher/internal/models"
	"hireflow/ats-matcher/internal/services"
	"hireflow/ats-matcher/pkg/errors"
)

const previewMaxChars = 500

// ParseHandler exposes single-document parsing for testing and debugging
// the extraction pipeline.
type ParseHandler struct {
	ingestor    services.IngestorService
	extractor   services.FieldExtractor
	maxFileSize int64
	logger      *zap.Logger
}

func NewParseHandler(ingestor services.IngestorService, extractor services.FieldExtractor, maxFileSize int64, logger *zap.Logger) *ParseHandler {
	return &ParseHandler{
		ingestor:    ingestor,
		extractor:   extractor,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleParse handles POST /api/ats/parse?is_jd=true|false with a single
// "file" field.
func (h *ParseHandler) HandleParse(c *fiber.Ctx) error {
	isJD := c.QueryBool("is_jd", false)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, errors.ErrMissingFile(`form field "file" is required`))
	}
	if fileHeader.Size > h.maxFileSize {
		return respondError(c, errors.ErrFileTooLarge(
			fmt.Sprintf("%s exceeds the maximum upload size of %d bytes", fileHeader.Filename, h.maxFileSize)))
	}

	mediaType, err := services.MediaTypeFromFilename(fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, errors.ErrInternal("failed to read uploaded file").Wrap(err))
	}
	raw, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return respondError(c, errors.ErrInternal("failed to read uploaded file").Wrap(err))
	}

	text, err := h.ingestor.ExtractText(raw, mediaType, fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}

	role := models.RoleCV
	if isJD {
		role = models.RoleJD
	}
	facets := h.extractor.ExtractFields(text, role)

	h.logger.Info("document parsed",
		zap.String("filename", fileHeader.Filename),
		zap.Bool("is_jd", isJD),
		zap.Int("skills", len(facets.Skills)),
	)

	return c.JSON(models.ParseResponse{
		Status:      "success",
		TextPreview: services.TruncateRunes(text, previewMaxChars),
		Facets: models.ParsedFacets{
			Skills:           facets.Skills,
			ExperienceYears:  facets.Experience.Years,
			Compensation:     facets.Compensation,
			Responsibilities: facets.Responsibilities,
			RoleBlocks:       facets.RoleBlocks,
			DegreeLevel:      facets.DegreeLevel.String(),
			SoftSkillCues:    facets.SoftSkillCues,
		},
		Metadata: models.ParseMetadata{
			Filename:       fileHeader.Filename,
			FileType:       string(mediaType),
			IsJD:           isJD,
			TextLength:     len(text),
			ProcessingNote: models.ProcessingNote,
		},
	})
}
