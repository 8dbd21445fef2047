package notify

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirocosta/timerclock/internal/model"
)

func newTodo(t *testing.T, start, end time.Time) *model.TodoItem {
	t.Helper()

	todo, err := model.NewTodoItem("review", "", &start, &end)
	require.NoError(t, err)
	todo.ID = "todo-1"
	return &todo
}

func kinds(events []model.Event) []model.EventKind {
	out := []model.EventKind{}
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	for name, tc := range map[string]struct {
		ticks []time.Time
		want  [][]model.EventKind
	}{
		"upcoming suppresses started": {
			ticks: []time.Time{start.Add(-10 * time.Minute), start.Add(-4 * time.Minute), start.Add(30 * time.Second)},
			want:  [][]model.EventKind{{}, {model.TodoStartUpcoming}, {}},
		},
		"started fires when upcoming window was missed": {
			ticks: []time.Time{start.Add(-10 * time.Minute), start.Add(20 * time.Second), start.Add(40 * time.Second)},
			want:  [][]model.EventKind{{}, {model.TodoStarted}, {}},
		},
		"fully missed window is not retried": {
			ticks: []time.Time{start.Add(-10 * time.Minute), start.Add(2 * time.Minute)},
			want:  [][]model.EventKind{{}, {}},
		},
		"upcoming window lower bound is inclusive": {
			ticks: []time.Time{start.Add(-5 * time.Minute)},
			want:  [][]model.EventKind{{model.TodoStartUpcoming}},
		},
		"grace upper bound is exclusive": {
			ticks: []time.Time{start.Add(time.Minute)},
			want:  [][]model.EventKind{{}},
		},
		"end follows start": {
			ticks: []time.Time{start.Add(-time.Minute), end.Add(-3 * time.Minute), end.Add(10 * time.Second)},
			want:  [][]model.EventKind{{model.TodoStartUpcoming}, {model.TodoEndUpcoming}, {}},
		},
		"ended after missed upcoming": {
			ticks: []time.Time{start, end},
			want:  [][]model.EventKind{{model.TodoStarted}, {model.TodoEnded}},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			todo := newTodo(t, start, end)
			got := [][]model.EventKind{}
			for _, now := range tc.ticks {
				got = append(got, kinds(Dispatch(todo, now, DefaultWindows())))
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatchBothInOneTick(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	todo := newTodo(t, start, start.Add(2*time.Minute))

	events := Dispatch(todo, start.Add(30*time.Second), DefaultWindows())
	assert.Equal(t, []model.EventKind{model.TodoStarted, model.TodoEndUpcoming}, kinds(events))
	assert.Equal(t, "review", events[0].Name)
	assert.Equal(t, "todo-1", events[0].EntityID)
	assert.Equal(t, start, events[0].At)
}

func TestDispatchFiresEachEventAtMostOnce(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	for _, step := range []time.Duration{100 * time.Millisecond, time.Second, 7 * time.Second, time.Minute} {
		todo := newTodo(t, start, end)
		counts := map[model.EventKind]int{}

		for now := start.Add(-time.Hour); now.Before(end.Add(time.Hour)); now = now.Add(step) {
			for _, ev := range Dispatch(todo, now, DefaultWindows()) {
				counts[ev.Kind]++
			}
		}

		for kind, n := range counts {
			assert.Equal(t, 1, n, "%s fired %d times with step %s", kind, n, step)
		}
		assert.Equal(t, 1, counts[model.TodoStartUpcoming]+counts[model.TodoStarted], "step %s", step)
		assert.Equal(t, 1, counts[model.TodoEndUpcoming]+counts[model.TodoEnded], "step %s", step)
	}
}

func TestDispatchSkipsCompletedAndUndated(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	todo := newTodo(t, start, start.Add(time.Hour))
	todo.Complete()

	assert.Empty(t, Dispatch(todo, start, DefaultWindows()))
	assert.False(t, todo.NotifiedStart)

	undated, err := model.NewTodoItem("undated", "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, Dispatch(&undated, start, DefaultWindows()))
}

func TestDispatchCustomWindows(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	todo := newTodo(t, start, start.Add(time.Hour))

	w := Windows{Lead: 15 * time.Minute, Grace: 5 * time.Minute}
	assert.Equal(t, []model.EventKind{model.TodoStartUpcoming}, kinds(Dispatch(todo, start.Add(-12*time.Minute), w)))
}

func TestMissed(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	todo := newTodo(t, start, end)
	w := DefaultWindows()

	assert.Empty(t, Missed(todo, time.Time{}, end.Add(time.Hour), w), "first tick has no previous instant")
	assert.Empty(t, Missed(todo, start.Add(-time.Hour), start.Add(30*time.Second), w))
	assert.Equal(t, []model.EventKind{model.TodoStarted}, Missed(todo, start.Add(-time.Hour), start.Add(2*time.Minute), w))
	assert.Equal(t, []model.EventKind{model.TodoStarted, model.TodoEnded}, Missed(todo, start.Add(-time.Hour), end.Add(time.Hour), w))
	assert.Empty(t, Missed(todo, start.Add(2*time.Minute), start.Add(3*time.Minute), w), "reported only on the tick that crosses the window")

	todo.NotifiedStart = true
	assert.Empty(t, Missed(todo, start.Add(-time.Hour), start.Add(2*time.Minute), w))
}
