package services

import (
	"regexp"
	"strings"
)

// Text segmentation helpers shared by the extractor and the
// responsibility matcher. Extraction output is noisy, so everything here
// is tolerant of stray whitespace and artifacts.

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•·▪‣o]|\d+[.)])\s+`)

// CleanText trims every line and collapses blank runs so downstream
// pattern matching sees a stable shape.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// SplitSentences breaks text into sentence-like units. Bullet lines count
// as sentences on their own even without terminal punctuation.
func SplitSentences(text string) []string {
	var sentences []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, s := range splitOnTerminators(line) {
			s = strings.TrimSpace(s)
			if s != "" {
				sentences = append(sentences, s)
			}
		}
	}

	return sentences
}

func splitOnTerminators(line string) []string {
	var result []string
	var current strings.Builder

	runes := []rune(line)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '!' || r == '?' {
			result = append(result, current.String())
			current.Reset()
			continue
		}
		if r == '.' {
			// Keep dots inside terms like "node.js" or "2.5": only split
			// when the next rune is whitespace or end of line.
			if i == len(runes)-1 || runes[i+1] == ' ' || runes[i+1] == '\t' {
				result = append(result, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}

// SplitBullets returns the lines of text with any bullet markers removed,
// flagging which lines were bulleted.
func SplitBullets(text string) []BulletLine {
	var lines []BulletLine

	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		isBullet := bulletPrefix.MatchString(raw)
		lines = append(lines, BulletLine{
			Text:     strings.TrimSpace(bulletPrefix.ReplaceAllString(raw, "")),
			IsBullet: isBullet,
		})
	}

	return lines
}

type BulletLine struct {
	Text     string
	IsBullet bool
}

// TruncateRunes bounds a snippet without splitting multi-byte characters.
func TruncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
