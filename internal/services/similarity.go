package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"google.golang.org/genai"
)

// SimilarityScorer rates how related two text snippets are, in [0,1].
// The matching pipeline only depends on this interface so the lexical
// scorer can be swapped for an embedding-based one without touching the
// orchestrator.
type SimilarityScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// LexicalScorer measures keyword coverage: the fraction of a's content
// keywords that appear in b, with a token-sort edit-distance floor so
// near-identical short strings still score high. Deterministic, no I/O.
type LexicalScorer struct{}

func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

func (s *LexicalScorer) Score(_ context.Context, a, b string) (float64, error) {
	aKeywords := Keywords(a)
	if len(aKeywords) == 0 {
		return 0, nil
	}

	bSet := make(map[string]bool, len(aKeywords))
	for _, kw := range Keywords(b) {
		bSet[kw] = true
	}

	overlap := 0
	for _, kw := range aKeywords {
		if bSet[kw] {
			overlap++
		}
	}
	coverage := float64(overlap) / float64(len(aKeywords))

	if ratio := TokenSortRatio(a, b); ratio > coverage {
		return ratio, nil
	}
	return coverage, nil
}

var levenshtein = metrics.NewLevenshtein()

// TokenSortRatio is the classic fuzzy-matching measure: tokenize both
// strings, sort the tokens, and take the Levenshtein similarity of the
// rejoined forms. Word order stops mattering; typos still count.
func TokenSortRatio(a, b string) float64 {
	return strutil.Similarity(sortedTokenString(a), sortedTokenString(b), levenshtein)
}

func sortedTokenString(text string) string {
	tokens := tokenize(text)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenize lowercases and splits on anything that is not a letter, digit,
// or one of the characters technical terms depend on (+ # .).
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// Keywords returns the content-bearing tokens of text: lowercased,
// stopwords dropped, very short noise tokens dropped.
func Keywords(text string) []string {
	var keywords []string
	for _, token := range tokenize(text) {
		if len([]rune(token)) < 3 || stopwords[token] {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// EmbeddingScorer rates similarity with Gemini text embeddings and cosine
// distance. Slower and non-deterministic across model versions, but
// catches paraphrases the lexical scorer misses.
type EmbeddingScorer struct {
	client     *genai.Client
	embedModel string
}

func NewEmbeddingScorer(apiKey string) (*EmbeddingScorer, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &EmbeddingScorer{
		client:     client,
		embedModel: "text-embedding-004",
	}, nil
}

func (s *EmbeddingScorer) Score(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return 0, err
	}

	sim := cosine(va, vb)
	// Clamp: floating point can drift just past the bounds.
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return sim, nil
}

func (s *EmbeddingScorer) embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := s.client.Models.EmbedContent(ctx, s.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
