package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirocosta/timerclock/internal/model"
)

func names(timers []model.CountdownTimer) []string {
	out := []string{}
	for _, t := range timers {
		out = append(out, t.Name)
	}
	return out
}

func TestStoreTimersKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var ids []string
	for _, name := range []string{"c", "a", "b", "d"} {
		added := s.AddTimer(model.CountdownTimer{Name: name})
		require.NotEmpty(t, added.ID)
		ids = append(ids, added.ID)
	}

	assert.Equal(t, []string{"c", "a", "b", "d"}, names(s.Timers()))

	require.NoError(t, s.DeleteTimer(ids[1]))
	assert.Equal(t, []string{"c", "b", "d"}, names(s.Timers()))

	got, err := s.Timer(ids[2])
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
	assert.Equal(t, ids[2], got.ID)
}

func TestStoreKeepsProvidedIDs(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.AddAlarm(model.Alarm{ID: "a1", Name: "first"})
	s.AddAlarm(model.Alarm{ID: "a2", Name: "second"})
	s.AddAlarm(model.Alarm{ID: "a1", Name: "replaced"})

	alarms := s.Alarms()
	require.Len(t, alarms, 2)
	assert.Equal(t, "replaced", alarms[0].Name)
	assert.Equal(t, "a2", alarms[1].ID)
}

func TestStoreNotFound(t *testing.T) {
	t.Parallel()

	s := NewStore()

	for name, tc := range map[string]struct {
		call func() error
		kind Kind
	}{
		"timer":         {call: func() error { _, err := s.Timer("x"); return err }, kind: KindTimer},
		"delete timer":  {call: func() error { return s.DeleteTimer("x") }, kind: KindTimer},
		"alarm":         {call: func() error { _, err := s.Alarm("x"); return err }, kind: KindAlarm},
		"delete alarm":  {call: func() error { return s.DeleteAlarm("x") }, kind: KindAlarm},
		"countdown":     {call: func() error { _, err := s.Countdown("x"); return err }, kind: KindCountdown},
		"del countdown": {call: func() error { return s.DeleteCountdown("x") }, kind: KindCountdown},
		"todo":          {call: func() error { _, err := s.Todo("x"); return err }, kind: KindTodo},
		"delete todo":   {call: func() error { return s.DeleteTodo("x") }, kind: KindTodo},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)

			var nf ErrNotFound
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, ErrNotFound{Kind: tc.kind, ID: "x"}, nf)
		})
	}
}

func TestStoreMutationThroughPointer(t *testing.T) {
	t.Parallel()

	s := NewStore()
	todo := s.AddTodo(model.TodoItem{Title: "write"})

	p, err := s.Todo(todo.ID)
	require.NoError(t, err)
	p.Complete()

	assert.True(t, s.Todos()[0].Completed)
}

func TestStoreListsAreCopies(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.AddCountdown(model.DateCountdown{Name: "trip"})

	list := s.Countdowns()
	list[0].Name = "changed"

	assert.Equal(t, "trip", s.Countdowns()[0].Name)
}

func TestStoreVisitOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.AddTodo(model.TodoItem{ID: "t1"})
	s.AddAlarm(model.Alarm{ID: "a1"})
	s.AddTimer(model.CountdownTimer{ID: "c1"})
	s.AddTimer(model.CountdownTimer{ID: "c2"})

	var seen []string
	s.Visit(Visitor{
		Timer: func(t *model.CountdownTimer) { seen = append(seen, t.ID) },
		Alarm: func(a *model.Alarm) { seen = append(seen, a.ID) },
		Todo:  func(t *model.TodoItem) { seen = append(seen, t.ID) },
	})

	if diff := cmp.Diff([]string{"c1", "c2", "a1", "t1"}, seen); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[Kind]int{KindTimer: 2, KindAlarm: 1, KindCountdown: 0, KindTodo: 1}, s.Len())
}

func TestStoreCalendarQueries(t *testing.T) {
	t.Parallel()

	at := func(m time.Month, d, h int) *time.Time {
		v := time.Date(2030, m, d, h, 0, 0, 0, time.UTC)
		return &v
	}

	s := NewStore()
	s.AddTodo(model.TodoItem{ID: "a", Title: "a", StartTime: at(1, 3, 9), EndTime: at(1, 3, 10)})
	s.AddTodo(model.TodoItem{ID: "b", Title: "b", StartTime: at(1, 31, 22), EndTime: at(2, 1, 2)})
	s.AddTodo(model.TodoItem{ID: "c", Title: "c", StartTime: at(1, 12, 9)})
	s.AddTodo(model.TodoItem{ID: "d", Title: "undated"})

	assert.Equal(t, []int{3, 12, 31}, s.MarkedDays(2030, time.January, time.UTC))
	assert.Equal(t, []int{1}, s.MarkedDays(2030, time.February, time.UTC))
	assert.Empty(t, s.MarkedDays(2030, time.March, time.UTC))

	on := s.TodosOn(time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, on, 1)
	assert.Equal(t, "b", on[0].ID)
}
