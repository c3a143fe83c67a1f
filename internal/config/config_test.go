package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "3000" {
		t.Fatalf("port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSize != 10485760 {
		t.Fatalf("max file size = %d, want 10485760", cfg.Upload.MaxFileSize)
	}
	if cfg.Matching.Timeout != 60*time.Second {
		t.Fatalf("timeout = %v, want 60s", cfg.Matching.Timeout)
	}
	if cfg.Matching.Concurrency != 4 {
		t.Fatalf("concurrency = %d, want 4", cfg.Matching.Concurrency)
	}
	if cfg.Matching.FuzzyThreshold != 0.80 {
		t.Fatalf("fuzzy threshold = %v, want 0.80", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Matching.SimilarityBackend != "lexical" {
		t.Fatalf("backend = %q, want lexical", cfg.Matching.SimilarityBackend)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("MATCH_TIMEOUT", "30s")
	t.Setenv("RESPONSIBILITY_THRESHOLD", "0.55")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSize != 1048576 {
		t.Fatalf("max file size = %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Matching.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.Matching.Timeout)
	}
	if cfg.Matching.ResponsibilityThreshold != 0.55 {
		t.Fatalf("responsibility threshold = %v", cfg.Matching.ResponsibilityThreshold)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MATCH_CONCURRENCY", "not-a-number")
	t.Setenv("MATCH_TIMEOUT", "garbage")

	cfg := Load()

	if cfg.Matching.Concurrency != 4 {
		t.Fatalf("concurrency = %d, want default 4", cfg.Matching.Concurrency)
	}
	if cfg.Matching.Timeout != 60*time.Second {
		t.Fatalf("timeout = %v, want default 60s", cfg.Matching.Timeout)
	}
}
