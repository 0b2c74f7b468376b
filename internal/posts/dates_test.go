package posts

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{input: "April 30, 2025", want: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)},
		{input: "Apr 25, 2025", want: time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)},
		{input: " 2025-04-30 ", want: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)},
		{input: "2025-04-30T10:30:00Z", want: time.Date(2025, time.April, 30, 10, 30, 0, 0, time.UTC)},
		{input: "2025/04/30", want: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseDate(%q): want %s, got %s", tc.input, tc.want, got)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if got, err := ParseDate(""); !errors.Is(err, ErrDateEmpty) || !got.IsZero() {
		t.Fatalf("expected ErrDateEmpty, got %v, %v", got, err)
	}
	if got, err := ParseDate("not a date"); err == nil || !got.IsZero() {
		t.Fatalf("expected error and zero time, got %v, %v", got, err)
	}
}
