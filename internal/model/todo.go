package model

import (
	"strings"
	"time"
)

// TodoStatus is derived from a todo's times, completion and now
type TodoStatus int

const (
	NotStarted TodoStatus = iota
	InProgress
	Completed
)

// String implements fmt.Stringer
func (s TodoStatus) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (s TodoStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TodoItem is a time-boxed to-do with start and end reminders
type TodoItem struct {
	ID          string
	Title       string
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
	Completed   bool
	// NotifiedStart and NotifiedEnd latch once their notification fires and
	// are never cleared by the tick path.
	NotifiedStart bool
	NotifiedEnd   bool
}

// NewTodoItem validates and creates a todo. When both times are given the
// end must be strictly after the start.
func NewTodoItem(title, description string, start, end *time.Time) (TodoItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return TodoItem{}, invalid(EmptyTitle, "title is required")
	}
	if start != nil && end != nil && !end.After(*start) {
		return TodoItem{}, invalid(EndBeforeStart, "end %s is not after start %s",
			end.Format(DateTimeLayout), start.Format(DateTimeLayout))
	}

	return TodoItem{
		Title:       title,
		Description: strings.TrimSpace(description),
		StartTime:   copyTime(start),
		EndTime:     copyTime(end),
	}, nil
}

// Status derives the todo's state at now
func (t *TodoItem) Status(now time.Time) TodoStatus {
	if t.StartTime != nil && now.Before(*t.StartTime) {
		return NotStarted
	}
	if t.Completed {
		return Completed
	}
	return InProgress
}

// Complete marks the todo as done; pending notifications are suppressed
func (t *TodoItem) Complete() {
	t.Completed = true
}

// Resume reopens a completed todo. Notification latches are left alone so
// reminders that already fired do not fire again.
func (t *TodoItem) Resume() {
	t.Completed = false
}

// OnDate reports whether the todo starts or ends on day's calendar date,
// read in day's location
func (t *TodoItem) OnDate(day time.Time) bool {
	return sameDate(t.StartTime, day) || sameDate(t.EndTime, day)
}

func sameDate(t *time.Time, day time.Time) bool {
	if t == nil {
		return false
	}
	ty, tm, td := t.In(day.Location()).Date()
	dy, dm, dd := day.Date()
	return ty == dy && tm == dm && td == dd
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
