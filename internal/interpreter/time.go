package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"homehub/internal/domain"
)

var (
	timeExprRe  = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*$`)
	wallClockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// NormalizeTime converts a spoken time expression ("9:30 pm", "7") to the
// canonical 24-hour "HH:MM" form. Minutes default to "00". "12 am" maps to
// midnight and "12 pm" stays noon. An hour outside 1-12 with no meridiem
// passes through unvalidated; callers that need a real wall-clock value
// check with ValidWallClock.
func NormalizeTime(expr string) (string, error) {
	m := timeExprRe.FindStringSubmatch(expr)
	if m == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTime, expr)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTime, expr)
	}

	minute := m[2]
	if minute == "" {
		minute = "00"
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%s", hour, minute), nil
}

// ValidWallClock reports whether t is a zero-padded 24-hour "HH:MM" naming
// a real time of day.
func ValidWallClock(t string) bool {
	return wallClockRe.MatchString(t)
}
