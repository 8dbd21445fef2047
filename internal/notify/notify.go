// package notify decides which todo reminders are due on a tick
package notify

import (
	"time"

	"github.com/cirocosta/timerclock/internal/model"
)

// Default notification windows
const (
	DefaultLead  = 5 * time.Minute
	DefaultGrace = time.Minute
)

// Windows configures when reminders fire around a todo's start and end.
//
// The "upcoming" reminder fires during [t-Lead, t); the "at" reminder fires
// during [t, t+Grace) only if the upcoming one did not. Both share one latch,
// so at most one of them fires for each of start and end.
type Windows struct {
	Lead  time.Duration
	Grace time.Duration
}

// DefaultWindows returns the 5 minute lead and 1 minute grace windows
func DefaultWindows() Windows {
	return Windows{Lead: DefaultLead, Grace: DefaultGrace}
}

// Dispatch returns the reminders due for todo at now, in start-then-end
// order, and latches the corresponding flags. Completed todos never notify.
func Dispatch(todo *model.TodoItem, now time.Time, w Windows) []model.Event {
	if todo.Completed {
		return nil
	}

	var events []model.Event
	if ev, ok := check(todo, todo.StartTime, &todo.NotifiedStart, now, w, model.TodoStartUpcoming, model.TodoStarted); ok {
		events = append(events, ev)
	}
	if ev, ok := check(todo, todo.EndTime, &todo.NotifiedEnd, now, w, model.TodoEndUpcoming, model.TodoEnded); ok {
		events = append(events, ev)
	}
	return events
}

func check(todo *model.TodoItem, at *time.Time, latch *bool, now time.Time, w Windows, upcoming, reached model.EventKind) (model.Event, bool) {
	if at == nil || *latch {
		return model.Event{}, false
	}

	var kind model.EventKind
	switch {
	case !now.Before(at.Add(-w.Lead)) && now.Before(*at):
		kind = upcoming
	case !now.Before(*at) && now.Before(at.Add(w.Grace)):
		kind = reached
	default:
		return model.Event{}, false
	}

	*latch = true
	return model.Event{Kind: kind, EntityID: todo.ID, Name: todo.Title, At: *at}, true
}

// Missed reports the reminder kinds whose whole window closed between prev
// and now without firing. Missed reminders are not retried; callers log them.
func Missed(todo *model.TodoItem, prev, now time.Time, w Windows) []model.EventKind {
	if todo.Completed || prev.IsZero() {
		return nil
	}

	var kinds []model.EventKind
	if missed(todo.StartTime, todo.NotifiedStart, prev, now, w) {
		kinds = append(kinds, model.TodoStarted)
	}
	if missed(todo.EndTime, todo.NotifiedEnd, prev, now, w) {
		kinds = append(kinds, model.TodoEnded)
	}
	return kinds
}

func missed(at *time.Time, latched bool, prev, now time.Time, w Windows) bool {
	if at == nil || latched {
		return false
	}
	closed := at.Add(w.Grace)
	return prev.Before(closed) && !now.Before(closed)
}
