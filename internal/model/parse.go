package model

import (
	"strings"
	"time"
)

var userDateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses a user-supplied local date and time. An empty string
// yields nil; anything unparseable is an InvalidDateFormat error.
func ParseDateTime(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range userDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	return nil, invalid(InvalidDateFormat, "%q is not YYYY-MM-DD HH:MM[:SS]", s)
}
