// package service drives the entity store: the tick coordinator and the
// operations the host exposes to users
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cirocosta/timerclock/internal/clock"
	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/notify"
	"github.com/cirocosta/timerclock/internal/repository"
)

// Result is the outcome of one tick
type Result struct {
	Events []model.Event `json:"events"`
	View   View          `json:"view"`
}

// Ticker evaluates every entity against the current time. It renders
// nothing; fired events are returned for the host to present.
type Ticker struct {
	windows notify.Windows
	logger  *slog.Logger
	last    time.Time
}

// NewTicker creates a ticker with the given notification windows
func NewTicker(windows notify.Windows, logger *slog.Logger) *Ticker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ticker{windows: windows, logger: logger}
}

// Tick advances timers, alarms and todo reminders in s to now and returns
// the events fired, in timer, alarm, todo order.
//
// Each entity fires at most once per call. A repeating alarm that is days
// late fires once and moves past now, so later ticks do not replay the
// missed occurrences.
func (t *Ticker) Tick(s *repository.Store, now time.Time) Result {
	var events []model.Event

	s.Visit(repository.Visitor{
		Timer: func(timer *model.CountdownTimer) {
			if ev, ok := timer.Tick(now); ok {
				events = append(events, ev)
			}
		},
		Alarm: func(alarm *model.Alarm) {
			if ev, ok := alarm.Check(now); ok {
				events = append(events, ev)
			}
		},
		Todo: func(todo *model.TodoItem) {
			for _, kind := range notify.Missed(todo, t.last, now, t.windows) {
				t.logger.Warn("todo reminder window missed",
					"todo", todo.ID,
					"title", todo.Title,
					"kind", kind.String(),
				)
			}
			events = append(events, notify.Dispatch(todo, now, t.windows)...)
		},
	})

	t.last = now

	return Result{Events: events, View: BuildView(s, now)}
}

// Run calls tick every interval until ctx is done. The first tick happens
// immediately.
func Run(ctx context.Context, c clock.Clock, interval time.Duration, tick func(now time.Time)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick(c.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick(c.Now())
		}
	}
}
