package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hireflow/ats-matcher/internal/models"
	"hireflow/ats-matcher/internal/services"
	"hireflow/ats-matcher/pkg/errors"
)

type MatchHandler struct {
	orchestrator services.Orchestrator
	maxFileSize  int64
	logger       *zap.Logger
}

func NewMatchHandler(orchestrator services.Orchestrator, maxFileSize int64, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		orchestrator: orchestrator,
		maxFileSize:  maxFileSize,
		logger:       logger,
	}
}

// HandleMatch handles POST /api/ats/match. Both files are read fully into
// memory, processed, and discarded with the request.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	requestID := uuid.New().String()
	log := h.logger.With(zap.String("request_id", requestID))

	jdDoc, err := h.readUpload(c, "jd_file", models.RoleJD)
	if err != nil {
		return respondError(c, err)
	}
	cvDoc, err := h.readUpload(c, "resume_file", models.RoleCV)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("match request received",
		zap.String("jd_file", jdDoc.Filename),
		zap.String("cv_file", cvDoc.Filename),
		zap.Int("jd_bytes", len(jdDoc.Raw)),
		zap.Int("cv_bytes", len(cvDoc.Raw)),
	)

	result, metadata, err := h.orchestrator.Match(c.UserContext(), jdDoc, cvDoc)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.MatchResponse{
		Status:      "success",
		MatchResult: result,
		Metadata:    metadata,
	})
}

// readUpload validates one multipart file field and returns the in-memory
// document. The size check happens before any extraction attempt.
func (h *MatchHandler) readUpload(c *fiber.Ctx, field string, role models.DocumentRole) (*models.Document, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, errors.ErrMissingFile(fmt.Sprintf("form field %q is required", field))
	}

	if fileHeader.Size > h.maxFileSize {
		return nil, errors.ErrFileTooLarge(
			fmt.Sprintf("%s exceeds the maximum upload size of %d bytes", fileHeader.Filename, h.maxFileSize))
	}

	mediaType, err := services.MediaTypeFromFilename(fileHeader.Filename)
	if err != nil {
		return nil, err
	}

	raw, err := readFileHeader(fileHeader)
	if err != nil {
		return nil, errors.ErrInternal(fmt.Sprintf("failed to read uploaded file %s", fileHeader.Filename)).Wrap(err)
	}
	if len(raw) == 0 {
		return nil, errors.ErrEmptyDocument(fmt.Sprintf("%s is empty", fileHeader.Filename))
	}

	return &models.Document{
		Filename:  fileHeader.Filename,
		MediaType: mediaType,
		Role:      role,
		Raw:       raw,
	}, nil
}

func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// respondError maps the error taxonomy onto the failure envelope.
func respondError(c *fiber.Ctx, err error) error {
	apiErr := errors.AsApiError(err)
	return c.Status(apiErr.StatusCode()).JSON(models.ErrorResponse{
		Status: "error",
		Error:  apiErr.Message,
		Detail: apiErr.Detail,
	})
}
