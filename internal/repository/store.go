package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cirocosta/timerclock/internal/model"
)

// NewID returns a fresh opaque entity identifier
func NewID() string {
	return uuid.NewString()
}

// CalendarView is the month the host's calendar is showing
type CalendarView struct {
	Year  int
	Month time.Month
}

// Store owns every entity the application tracks: one insertion-ordered
// collection per kind plus the single stopwatch.
//
// Store does no locking. Callers serialize ticks and mutations, and must not
// add or delete entities from inside a Visit callback.
type Store struct {
	timers     collection[model.CountdownTimer]
	alarms     collection[model.Alarm]
	countdowns collection[model.DateCountdown]
	todos      collection[model.TodoItem]

	Stopwatch model.Stopwatch
	Calendar  CalendarView
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		timers:     newCollection[model.CountdownTimer](KindTimer),
		alarms:     newCollection[model.Alarm](KindAlarm),
		countdowns: newCollection[model.DateCountdown](KindCountdown),
		todos:      newCollection[model.TodoItem](KindTodo),
	}
}

// AddTimer stores t, assigning an ID when it has none, and returns the stored copy
func (s *Store) AddTimer(t model.CountdownTimer) model.CountdownTimer {
	if t.ID == "" {
		t.ID = NewID()
	}
	s.timers.put(t.ID, t)
	return t
}

// Timer returns the timer with the given ID for in-place mutation
func (s *Store) Timer(id string) (*model.CountdownTimer, error) {
	return s.timers.get(id)
}

// DeleteTimer removes a timer
func (s *Store) DeleteTimer(id string) error {
	return s.timers.delete(id)
}

// Timers returns copies of all timers in insertion order
func (s *Store) Timers() []model.CountdownTimer {
	return s.timers.list()
}

// AddAlarm stores a, assigning an ID when it has none, and returns the stored copy
func (s *Store) AddAlarm(a model.Alarm) model.Alarm {
	if a.ID == "" {
		a.ID = NewID()
	}
	s.alarms.put(a.ID, a)
	return a
}

// Alarm returns the alarm with the given ID for in-place mutation
func (s *Store) Alarm(id string) (*model.Alarm, error) {
	return s.alarms.get(id)
}

// DeleteAlarm removes an alarm
func (s *Store) DeleteAlarm(id string) error {
	return s.alarms.delete(id)
}

// Alarms returns copies of all alarms in insertion order
func (s *Store) Alarms() []model.Alarm {
	return s.alarms.list()
}

// AddCountdown stores c, assigning an ID when it has none, and returns the stored copy
func (s *Store) AddCountdown(c model.DateCountdown) model.DateCountdown {
	if c.ID == "" {
		c.ID = NewID()
	}
	s.countdowns.put(c.ID, c)
	return c
}

// Countdown returns the countdown with the given ID
func (s *Store) Countdown(id string) (*model.DateCountdown, error) {
	return s.countdowns.get(id)
}

// DeleteCountdown removes a countdown
func (s *Store) DeleteCountdown(id string) error {
	return s.countdowns.delete(id)
}

// Countdowns returns copies of all countdowns in insertion order
func (s *Store) Countdowns() []model.DateCountdown {
	return s.countdowns.list()
}

// AddTodo stores t, assigning an ID when it has none, and returns the stored copy
func (s *Store) AddTodo(t model.TodoItem) model.TodoItem {
	if t.ID == "" {
		t.ID = NewID()
	}
	s.todos.put(t.ID, t)
	return t
}

// Todo returns the todo with the given ID for in-place mutation
func (s *Store) Todo(id string) (*model.TodoItem, error) {
	return s.todos.get(id)
}

// DeleteTodo removes a todo
func (s *Store) DeleteTodo(id string) error {
	return s.todos.delete(id)
}

// Todos returns copies of all todos in insertion order
func (s *Store) Todos() []model.TodoItem {
	return s.todos.list()
}

// Visitor receives every mutable entity during a tick pass
type Visitor struct {
	Timer func(*model.CountdownTimer)
	Alarm func(*model.Alarm)
	Todo  func(*model.TodoItem)
}

// Visit walks timers, alarms and todos in that order, each in insertion
// order. Nil callbacks are skipped.
func (s *Store) Visit(v Visitor) {
	if v.Timer != nil {
		s.timers.each(v.Timer)
	}
	if v.Alarm != nil {
		s.alarms.each(v.Alarm)
	}
	if v.Todo != nil {
		s.todos.each(v.Todo)
	}
}

// Len returns the number of entities per kind
func (s *Store) Len() map[Kind]int {
	return map[Kind]int{
		KindTimer:     s.timers.len(),
		KindAlarm:     s.alarms.len(),
		KindCountdown: s.countdowns.len(),
		KindTodo:      s.todos.len(),
	}
}

// TodosOn returns the todos that start or end on day's date
func (s *Store) TodosOn(day time.Time) []model.TodoItem {
	var out []model.TodoItem
	s.todos.each(func(t *model.TodoItem) {
		if t.OnDate(day) {
			out = append(out, *t)
		}
	})
	return out
}

// MarkedDays returns the sorted days of the month on which a todo starts or ends
func (s *Store) MarkedDays(year int, month time.Month, loc *time.Location) []int {
	seen := map[int]bool{}
	mark := func(t *time.Time) {
		if t == nil {
			return
		}
		lt := t.In(loc)
		if lt.Year() == year && lt.Month() == month {
			seen[lt.Day()] = true
		}
	}
	s.todos.each(func(t *model.TodoItem) {
		mark(t.StartTime)
		mark(t.EndTime)
	})

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
