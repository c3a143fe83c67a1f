package services

import (
	"context"
	"testing"
)

func TestLexicalScorerBounds(t *testing.T) {
	scorer := NewLexicalScorer()

	cases := []struct {
		name string
		a, b string
	}{
		{"identical", "design scalable services", "design scalable services"},
		{"disjoint", "design scalable services", "paint watercolor landscapes"},
		{"empty a", "", "some resume text"},
		{"empty b", "build data pipelines", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := scorer.Score(context.Background(), tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if score < 0 || score > 1 {
				t.Fatalf("score %v out of [0,1]", score)
			}
		})
	}
}

func TestLexicalScorerIdenticalIsFull(t *testing.T) {
	scorer := NewLexicalScorer()

	score, err := scorer.Score(context.Background(), "develop rest apis", "develop rest apis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 1 {
		t.Fatalf("expected 1.0 for identical text, got %v", score)
	}
}

func TestLexicalScorerCoverage(t *testing.T) {
	scorer := NewLexicalScorer()

	// 3 of 4 content keywords of a appear in b.
	score, err := scorer.Score(context.Background(),
		"maintain scalable backend services",
		"built and maintained scalable backend services for payments")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score < 0.5 {
		t.Fatalf("expected strong coverage, got %v", score)
	}

	weak, err := scorer.Score(context.Background(),
		"maintain scalable backend services",
		"managed vendor relationships and budgets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weak >= score {
		t.Fatalf("unrelated text scored %v, related scored %v", weak, score)
	}
}

func TestTokenSortRatio(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "node.js", "node.js", 1, 1},
		{"close variant", "node.js", "nodejs", 0.8, 1},
		{"word order ignored", "engineer software senior", "senior software engineer", 1, 1},
		{"unrelated", "docker", "kubernetes", 0, 0.6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ratio := TokenSortRatio(tc.a, tc.b)
			if ratio < tc.min || ratio > tc.max {
				t.Fatalf("ratio %v outside [%v, %v]", ratio, tc.min, tc.max)
			}
		})
	}
}

func TestKeywordsFiltersStopwordsAndNoise(t *testing.T) {
	keywords := Keywords("You will design and maintain the APIs for our team")

	for _, kw := range keywords {
		if stopwords[kw] {
			t.Fatalf("stopword %q leaked through", kw)
		}
		if len([]rune(kw)) < 3 {
			t.Fatalf("short token %q leaked through", kw)
		}
	}

	want := map[string]bool{"design": true, "maintain": true, "apis": true, "team": true}
	for _, kw := range keywords {
		if !want[kw] {
			t.Fatalf("unexpected keyword %q in %v", kw, keywords)
		}
		delete(want, kw)
	}
	if len(want) != 0 {
		t.Fatalf("missing keywords: %v", want)
	}
}

func TestCosine(t *testing.T) {
	if got := cosine([]float32{1, 0}, []float32{1, 0}); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := cosine([]float32{1, 0}, []float32{0, 1}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := cosine([]float32{1, 0}, []float32{}); got != 0 {
		t.Fatalf("expected 0 for mismatched lengths, got %v", got)
	}
}
