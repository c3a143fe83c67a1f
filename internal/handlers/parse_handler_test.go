package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hireflow/ats-matcher/internal/models"
	"hireflow/ats-matcher/internal/services"
)

func newParseApp(maxFileSize int64) *fiber.App {
	app := fiber.New()
	handler := NewParseHandler(services.NewIngestorService(), services.NewFieldExtractor(), maxFileSize, zap.NewNop())
	app.Post("/api/ats/parse", handler.HandleParse)
	return app
}

func TestHandleParseJD(t *testing.T) {
	app := newParseApp(1 << 20)

	jdText := "Senior Backend Engineer\n" +
		"5+ years of experience.\n" +
		"- Develop and maintain scalable backend services\n" +
		"Skills: Python, SQL, Docker\n"

	body, contentType := multipartBody(t, map[string]struct{ name, content string }{
		"file": {"jd.txt", jdText},
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/ats/parse?is_jd=true", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got models.ParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Status != "success" {
		t.Fatalf("status field = %q", got.Status)
	}
	if !got.Metadata.IsJD || got.Metadata.Filename != "jd.txt" {
		t.Fatalf("metadata: %+v", got.Metadata)
	}
	if got.Metadata.ProcessingNote != models.ProcessingNote {
		t.Fatalf("processing note missing: %+v", got.Metadata)
	}

	skills := make(map[string]bool)
	for _, s := range got.Facets.Skills {
		skills[s] = true
	}
	for _, want := range []string{"python", "sql", "docker"} {
		if !skills[want] {
			t.Fatalf("expected skill %q in %v", want, got.Facets.Skills)
		}
	}
	if got.Facets.ExperienceYears == nil || *got.Facets.ExperienceYears != 5 {
		t.Fatalf("experience years: %+v", got.Facets.ExperienceYears)
	}
	if len(got.Facets.Responsibilities) != 1 {
		t.Fatalf("responsibilities: %v", got.Facets.Responsibilities)
	}
	if got.TextPreview == "" {
		t.Fatalf("text preview should not be empty")
	}
}

func TestHandleParseDefaultsToCV(t *testing.T) {
	app := newParseApp(1 << 20)

	cvText := "Jane Smith\n" +
		"Backend Engineer at Initech (2020 - 2023)\n" +
		"- Built internal services in Go\n"

	body, contentType := multipartBody(t, map[string]struct{ name, content string }{
		"file": {"cv.txt", cvText},
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/ats/parse", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got models.ParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Metadata.IsJD {
		t.Fatalf("is_jd should default to false")
	}
	if len(got.Facets.RoleBlocks) != 1 {
		t.Fatalf("role blocks: %+v", got.Facets.RoleBlocks)
	}
	if len(got.Facets.Responsibilities) != 0 {
		t.Fatalf("CV parse should not extract responsibilities: %v", got.Facets.Responsibilities)
	}
}

func TestHandleParseMissingFile(t *testing.T) {
	app := newParseApp(1 << 20)

	body, contentType := multipartBody(t, map[string]struct{ name, content string }{})

	req, _ := http.NewRequest(http.MethodPost, "/api/ats/parse", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleParseEmptyDocument(t *testing.T) {
	app := newParseApp(1 << 20)

	body, contentType := multipartBody(t, map[string]struct{ name, content string }{
		"file": {"cv.txt", "   \n \n"},
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/ats/parse", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}
