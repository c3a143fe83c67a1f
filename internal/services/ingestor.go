package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"hireflow/ats-matcher/internal/models"
	"hireflow/ats-matcher/pkg/errors"
)

// IngestorService turns uploaded document bytes into plain text. Input is
// never written to disk; callers hand over bytes and get text back.
type IngestorService interface {
	ExtractText(data []byte, mediaType models.MediaType, filename string) (string, error)
}

type ingestorService struct{}

func NewIngestorService() IngestorService {
	return &ingestorService{}
}

// MediaTypeFromFilename infers the declared media type from the file
// extension. Returns an input error for anything outside the supported set.
func MediaTypeFromFilename(filename string) (models.MediaType, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return models.MediaTypePDF, nil
	case strings.HasSuffix(name, ".docx"):
		return models.MediaTypeDOCX, nil
	case strings.HasSuffix(name, ".doc"):
		return models.MediaTypeDOC, nil
	case strings.HasSuffix(name, ".txt"):
		return models.MediaTypeTXT, nil
	default:
		return "", errors.ErrUnsupportedFormat(
			fmt.Sprintf("%q is not a supported file type. Supported types: .pdf, .docx, .doc, .txt", filename))
	}
}

func (s *ingestorService) ExtractText(data []byte, mediaType models.MediaType, filename string) (string, error) {
	var (
		text string
		err  error
	)

	switch mediaType {
	case models.MediaTypePDF:
		text, err = extractPDFText(data)
	case models.MediaTypeDOCX, models.MediaTypeDOC:
		text, err = extractDocxText(data)
	case models.MediaTypeTXT:
		text, err = extractTxtText(data)
	default:
		return "", errors.ErrUnsupportedFormat(fmt.Sprintf("unsupported media type: %s", mediaType))
	}

	if err != nil {
		return "", errors.ErrCorruptDocument(
			fmt.Sprintf("failed to extract text from %s: %v", filename, err)).Wrap(err)
	}

	text = CleanText(text)
	if strings.TrimSpace(text) == "" {
		return "", errors.ErrEmptyDocument(
			fmt.Sprintf("no text content found in %s", filename))
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return stripDocxTags(content), nil
}

// stripDocxTags drops the raw OOXML markup the docx library leaves in the
// editable content, keeping paragraph breaks.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var out strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func extractTxtText(data []byte) (string, error) {
	// Strip a UTF-8 BOM if present; anything else is passed through and
	// normalized later.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	return string(data), nil
}
