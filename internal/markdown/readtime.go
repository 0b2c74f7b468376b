package markdown

import (
	"fmt"
	"strings"
)

// DefaultWordsPerMinute is the reading speed assumed by EstimateReadTime.
const DefaultWordsPerMinute = 225

// ReadingMinutes returns ceil(words / wordsPerMinute) for content.
func ReadingMinutes(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// EstimateReadTime renders the reading estimate shown next to a post, e.g.
// "4 min read". Anything up to a minute reads as "1 min read".
func EstimateReadTime(content string, wordsPerMinute int) string {
	minutes := ReadingMinutes(content, wordsPerMinute)
	if minutes <= 1 {
		return "1 min read"
	}
	return fmt.Sprintf("%d min read", minutes)
}
