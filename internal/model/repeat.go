package model

import (
	"fmt"
	"time"
)

// RepeatPolicy governs how an alarm's trigger instant advances after firing
type RepeatPolicy int

const (
	RepeatOnce RepeatPolicy = iota
	RepeatDaily
	RepeatWeekend
)

// String implements fmt.Stringer
func (p RepeatPolicy) String() string {
	switch p {
	case RepeatOnce:
		return "once"
	case RepeatDaily:
		return "daily"
	case RepeatWeekend:
		return "weekend"
	}
	return fmt.Sprintf("RepeatPolicy(%d)", int(p))
}

// ParseRepeatPolicy parses the textual form produced by String
func ParseRepeatPolicy(s string) (RepeatPolicy, error) {
	switch s {
	case "once", "":
		return RepeatOnce, nil
	case "daily":
		return RepeatDaily, nil
	case "weekend":
		return RepeatWeekend, nil
	}
	return 0, fmt.Errorf("unknown repeat policy %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (p RepeatPolicy) MarshalText() ([]byte, error) {
	switch p {
	case RepeatOnce, RepeatDaily, RepeatWeekend:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("unknown repeat policy %d", int(p))
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *RepeatPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseRepeatPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Advance returns the trigger instant that follows t under policy p.
//
// Days are added on the wall clock, so 07:30 stays 07:30 across DST changes.
// A t inside a DST gap has already been shifted by time.Date and Advance keeps
// that shifted wall time; Alarm re-pins its own hour and minute. The weekend
// walk visits at most seven consecutive days, one of which is always a
// Saturday.
func Advance(t time.Time, p RepeatPolicy) time.Time {
	switch p {
	case RepeatOnce, RepeatDaily:
		return t.AddDate(0, 0, 1)
	case RepeatWeekend:
		next := t.AddDate(0, 0, 1)
		for i := 1; i < 7 && !isWeekend(next); i++ {
			next = next.AddDate(0, 0, 1)
		}
		return next
	}
	panic(fmt.Sprintf("model: unhandled repeat policy %d", int(p)))
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
