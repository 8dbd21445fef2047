package model

import (
	"strings"
	"time"
)

// DateCountdown counts whole days towards a calendar date
type DateCountdown struct {
	ID   string
	Name string
	// TargetDate is midnight of the target day in the local zone
	TargetDate time.Time
}

// NewDateCountdown parses a YYYY-MM-DD date into a countdown
func NewDateCountdown(name, date string, loc *time.Location) (DateCountdown, error) {
	if loc == nil {
		loc = time.Local
	}

	target, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return DateCountdown{}, invalid(InvalidDateFormat, "%q is not YYYY-MM-DD", date)
	}

	return DateCountdown{Name: name, TargetDate: target}, nil
}

// DaysRemaining returns the number of calendar days from now's date to the
// target date. It is negative once the target has passed.
func (c DateCountdown) DaysRemaining(now time.Time) int {
	return DaysBetween(now, c.TargetDate)
}

// CountdownStatus is the derived view of a DateCountdown
type CountdownStatus struct {
	Days    int  `json:"days"`
	Overdue bool `json:"overdue"`
}

// Status returns the remaining days, or the overdue days once past the target
func (c DateCountdown) Status(now time.Time) CountdownStatus {
	days := c.DaysRemaining(now)
	if days < 0 {
		return CountdownStatus{Days: -days, Overdue: true}
	}
	return CountdownStatus{Days: days}
}

// DaysBetween counts calendar days from a's date to b's date, each read in
// its own location. Dates are compared as UTC midnights so DST days count as
// one, and in Unix seconds since a time.Duration overflows past ~292 years.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / 86400)
}
