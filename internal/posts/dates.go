package posts

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrDateEmpty is returned when a post carries a blank date.
var ErrDateEmpty = errors.New("posts: date is empty")

var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate reads a frontmatter date. Zone-less values are interpreted as UTC.
// The zero time is returned alongside any error.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrDateEmpty
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}
