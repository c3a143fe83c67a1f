package services

import (
	"reflect"
	"testing"
)

func TestSplitSentencesKeepsDottedTerms(t *testing.T) {
	got := SplitSentences("Built services with node.js and Go. Shipped 2.5 releases per quarter.")
	want := []string{
		"Built services with node.js and Go.",
		"Shipped 2.5 releases per quarter.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSentences = %v, want %v", got, want)
	}
}

func TestSplitSentencesLinesWithoutTerminators(t *testing.T) {
	got := SplitSentences("First line\nSecond line! Third line?")
	want := []string{"First line", "Second line!", "Third line?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSentences = %v, want %v", got, want)
	}
}

func TestSplitBullets(t *testing.T) {
	text := "Heading\n- first item\n* second item\n1. third item\nplain line"
	got := SplitBullets(text)

	want := []BulletLine{
		{Text: "Heading", IsBullet: false},
		{Text: "first item", IsBullet: true},
		{Text: "second item", IsBullet: true},
		{Text: "third item", IsBullet: true},
		{Text: "plain line", IsBullet: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitBullets = %v, want %v", got, want)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("TruncateRunes = %q", got)
	}
	if got := TruncateRunes("abcdefghij", 5); got != "abcde..." {
		t.Fatalf("TruncateRunes = %q", got)
	}
	// Multi-byte characters must not be split mid-rune.
	if got := TruncateRunes("héllo wörld", 4); got != "héll..." {
		t.Fatalf("TruncateRunes = %q", got)
	}
}
