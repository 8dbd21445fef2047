// package model contains the time entities tracked by the application and
// their state transitions
package model

import (
	"fmt"
	"time"
)

// Layouts used wherever instants and dates are rendered as text
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// EventKind identifies what happened during a tick
type EventKind int

const (
	TimerFinished EventKind = iota + 1
	AlarmFired
	TodoStartUpcoming
	TodoStarted
	TodoEndUpcoming
	TodoEnded
)

// String implements fmt.Stringer
func (k EventKind) String() string {
	switch k {
	case TimerFinished:
		return "timer-finished"
	case AlarmFired:
		return "alarm-fired"
	case TodoStartUpcoming:
		return "todo-start-upcoming"
	case TodoStarted:
		return "todo-started"
	case TodoEndUpcoming:
		return "todo-end-upcoming"
	case TodoEnded:
		return "todo-ended"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *EventKind) UnmarshalText(text []byte) error {
	for c := TimerFinished; c <= TodoEnded; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// Event is something the host should present to the user
type Event struct {
	Kind     EventKind `json:"kind"`
	EntityID string    `json:"entity_id"`
	Name     string    `json:"name"`
	// At is the instant the event refers to (deadline, alarm time, todo
	// start or end), not the tick that observed it.
	At time.Time `json:"at"`
}

// String renders the event as a log-friendly line
func (e Event) String() string {
	return fmt.Sprintf("%s %q at %s", e.Kind, e.Name, e.At.Format(DateTimeLayout))
}
