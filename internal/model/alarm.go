package model

import "time"

// Alarm triggers at a clock time and optionally repeats
type Alarm struct {
	ID     string
	Name   string
	Hour   int
	Minute int
	Repeat RepeatPolicy
	// AlarmTime is the next trigger instant. While Active it is kept in the
	// future at rest.
	AlarmTime time.Time
	Active    bool
}

// NewAlarm creates an active alarm for hour:minute.
//
// When today's hour:minute has already passed the trigger is rolled forward
// once by the repeat policy. A weekend alarm created on a weekday is also
// rolled forward so that it only ever triggers on Saturday or Sunday.
func NewAlarm(name string, hour, minute int, repeat RepeatPolicy, now time.Time) (Alarm, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Alarm{}, invalid(InvalidTimeOfDay, "%02d:%02d is not a time of day", hour, minute)
	}
	switch repeat {
	case RepeatOnce, RepeatDaily, RepeatWeekend:
	default:
		return Alarm{}, invalid(InvalidRepeat, "unknown repeat policy %d", int(repeat))
	}

	a := Alarm{
		Name:   name,
		Hour:   hour,
		Minute: minute,
		Repeat: repeat,
		Active: true,
	}

	y, m, d := now.Date()
	a.AlarmTime = time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	if a.AlarmTime.Before(now) || (repeat == RepeatWeekend && !isWeekend(a.AlarmTime)) {
		a.AlarmTime = a.next(a.AlarmTime)
	}

	return a, nil
}

// Check fires the alarm when now has reached its trigger instant.
//
// A Once alarm becomes inactive. A repeating alarm is moved to its first
// occurrence after now, so occurrences missed while the process was down or
// the tick was late collapse into this single event.
func (a *Alarm) Check(now time.Time) (Event, bool) {
	if !a.Active || now.Before(a.AlarmTime) {
		return Event{}, false
	}

	ev := Event{Kind: AlarmFired, EntityID: a.ID, Name: a.Name, At: a.AlarmTime}
	if a.Repeat == RepeatOnce {
		a.Active = false
		return ev, true
	}

	next := a.next(a.AlarmTime)
	for !next.After(now) {
		next = a.next(next)
	}
	a.AlarmTime = next
	return ev, true
}

// next applies the repeat policy to t and pins the result back to the
// alarm's hour:minute. Advance keeps whatever wall time t has, which is not
// hour:minute when t was normalized out of a DST gap.
func (a *Alarm) next(t time.Time) time.Time {
	n := Advance(t, a.Repeat)
	y, m, d := n.Date()
	return time.Date(y, m, d, a.Hour, a.Minute, 0, 0, n.Location())
}

// Reactivate turns the alarm back on. AlarmTime is not recomputed; when it
// lies in the past the alarm fires on the next tick.
func (a *Alarm) Reactivate() {
	a.Active = true
}
