package markdown

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestEstimateReadTime(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "1 min read"},
		{name: "one word", content: "hello", want: "1 min read"},
		{name: "exactly one minute", content: words(225), want: "1 min read"},
		{name: "just over a minute", content: words(226), want: "2 min read"},
		{name: "two minutes", content: words(450), want: "2 min read"},
		{name: "three minutes", content: words(451), want: "3 min read"},
		{name: "mixed whitespace", content: "a\tb\n\nc   d\r\ne", want: "1 min read"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateReadTime(tc.content, DefaultWordsPerMinute); got != tc.want {
				t.Fatalf("EstimateReadTime: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEstimateReadTime_CustomSpeed(t *testing.T) {
	if got := EstimateReadTime(words(300), 100); got != "3 min read" {
		t.Fatalf("expected 3 min read at 100 wpm, got %q", got)
	}
	if got := EstimateReadTime(words(300), 0); got != "2 min read" {
		t.Fatalf("expected default speed for zero wpm, got %q", got)
	}
}

func TestReadingMinutes(t *testing.T) {
	if got := ReadingMinutes("", DefaultWordsPerMinute); got != 0 {
		t.Fatalf("expected 0 minutes for empty content, got %d", got)
	}
	if got := ReadingMinutes(words(676), DefaultWordsPerMinute); got != 4 {
		t.Fatalf("expected 4 minutes, got %d", got)
	}
}
