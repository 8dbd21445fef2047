package model

import "time"

// Stopwatch measures elapsed time across pauses and process restarts.
//
// While running, the elapsed time is derived from the reference start on
// every read; the cached elapsed value is only meaningful while paused.
type Stopwatch struct {
	elapsed time.Duration
	running bool
	start   time.Time
}

// RestoreStopwatch rebuilds a stopwatch from a saved snapshot. A running
// stopwatch gets its reference start re-derived as now-elapsed, since a
// reference instant from another process is meaningless.
func RestoreStopwatch(elapsed time.Duration, running bool, now time.Time) Stopwatch {
	if elapsed < 0 {
		elapsed = 0
	}
	sw := Stopwatch{elapsed: elapsed}
	if running {
		sw.Start(now)
	}
	return sw
}

// Start resumes counting from the current elapsed value. No-op when running.
func (s *Stopwatch) Start(now time.Time) {
	if s.running {
		return
	}
	s.start = now.Add(-s.elapsed)
	s.running = true
}

// Pause freezes the elapsed value. No-op when not running.
func (s *Stopwatch) Pause(now time.Time) {
	if !s.running {
		return
	}
	s.elapsed = now.Sub(s.start)
	s.running = false
}

// Reset stops the stopwatch and clears the elapsed value
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
	s.start = time.Time{}
}

// Read returns the elapsed time at now without mutating the stopwatch
func (s Stopwatch) Read(now time.Time) time.Duration {
	if s.running {
		return now.Sub(s.start)
	}
	return s.elapsed
}

// Running reports whether the stopwatch is counting
func (s Stopwatch) Running() bool {
	return s.running
}
