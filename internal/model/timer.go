package model

import (
	"math"
	"time"
)

// CountdownTimer counts down a fixed duration towards an absolute deadline
type CountdownTimer struct {
	ID           string
	Name         string
	TotalSeconds uint32
	// EndTime is fixed at creation and never recomputed from TotalSeconds,
	// so a restored timer keeps its original deadline.
	EndTime time.Time
	Running bool
}

// NewCountdownTimer creates a running timer that ends minutes:seconds after now
func NewCountdownTimer(name string, minutes, seconds int, now time.Time) (CountdownTimer, error) {
	if minutes < 0 || seconds < 0 {
		return CountdownTimer{}, invalid(InvalidDuration, "negative duration %dm%ds", minutes, seconds)
	}

	total := int64(minutes)*60 + int64(seconds)
	if total == 0 {
		return CountdownTimer{}, invalid(InvalidDuration, "duration must be positive")
	}
	if total > math.MaxUint32 {
		return CountdownTimer{}, invalid(InvalidDuration, "duration of %d seconds is too long", total)
	}

	return CountdownTimer{
		Name:         name,
		TotalSeconds: uint32(total),
		EndTime:      now.Add(time.Duration(total) * time.Second),
		Running:      true,
	}, nil
}

// Remaining returns the time left before the deadline, never negative
func (t *CountdownTimer) Remaining(now time.Time) time.Duration {
	if !t.Running {
		return 0
	}
	left := t.EndTime.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Tick stops the timer and reports a TimerFinished event once the deadline is reached
func (t *CountdownTimer) Tick(now time.Time) (Event, bool) {
	if !t.Running || t.EndTime.Sub(now) > 0 {
		return Event{}, false
	}

	t.Running = false
	return Event{Kind: TimerFinished, EntityID: t.ID, Name: t.Name, At: t.EndTime}, true
}

// Stop halts the timer without firing
func (t *CountdownTimer) Stop() {
	t.Running = false
}

// Reactivate marks the timer as running again. The deadline is kept, so a
// timer whose deadline has passed finishes on the next tick.
func (t *CountdownTimer) Reactivate() {
	t.Running = true
}
