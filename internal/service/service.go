package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cirocosta/timerclock/internal/clock"
	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/notify"
	"github.com/cirocosta/timerclock/internal/repository"
)

const recentEventsLimit = 100

// Default names for entities created without one
const (
	DefaultTimerName     = "Timer"
	DefaultAlarmName     = "Alarm"
	DefaultCountdownName = "Countdown"
)

// Saver persists the store
type Saver interface {
	Save(s *repository.Store, now time.Time) error
}

// Service exposes the store to a multi-threaded host. Every call takes the
// same lock, so ticks and user actions never interleave and deletions
// always land strictly between tick passes.
type Service struct {
	mu     sync.Mutex
	clock  clock.Clock
	store  *repository.Store
	ticker *Ticker
	saver  Saver
	logger *slog.Logger
	recent []model.Event
}

// Options configures a Service
type Options struct {
	Clock   clock.Clock
	Windows notify.Windows
	Saver   Saver
	Logger  *slog.Logger
}

// New creates a service around store
func New(store *repository.Store, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Windows == (notify.Windows{}) {
		opts.Windows = notify.DefaultWindows()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Service{
		clock:  opts.Clock,
		store:  store,
		ticker: NewTicker(opts.Windows, opts.Logger),
		saver:  opts.Saver,
		logger: opts.Logger,
	}
}

// Tick runs one tick pass at the clock's current time
func (s *Service) Tick(ctx context.Context) Result {
	return s.TickAt(ctx, s.clock.Now())
}

// TickAt runs one tick pass at now, logs fired events and keeps them for
// RecentEvents
func (s *Service) TickAt(ctx context.Context, now time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.ticker.Tick(s.store, now)
	for _, ev := range res.Events {
		s.logger.InfoContext(ctx, "event fired",
			"kind", ev.Kind.String(),
			"id", ev.EntityID,
			"name", ev.Name,
			"at", ev.At.Format(model.DateTimeLayout),
		)
	}

	s.recent = append(s.recent, res.Events...)
	if over := len(s.recent) - recentEventsLimit; over > 0 {
		s.recent = append([]model.Event(nil), s.recent[over:]...)
	}
	return res
}

// State returns the display state without advancing anything
func (s *Service) State(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BuildView(s.store, s.clock.Now())
}

// RecentEvents returns the most recently fired events, oldest first
func (s *Service) RecentEvents(ctx context.Context) []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Event{}, s.recent...)
}

// Save persists the store through the configured Saver
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saver == nil {
		return fmt.Errorf("no saver configured")
	}
	return s.saver.Save(s.store, s.clock.Now())
}

// AddTimer creates a running countdown timer
func (s *Service) AddTimer(ctx context.Context, req model.CreateTimerRequest) (TimerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	timer, err := model.NewCountdownTimer(orDefault(req.Name, DefaultTimerName), req.Minutes, req.Seconds, now)
	if err != nil {
		return TimerView{}, err
	}

	return timerView(s.store.AddTimer(timer), now), nil
}

// StopTimer halts a timer without firing it
func (s *Service) StopTimer(ctx context.Context, id string) (TimerView, error) {
	return s.updateTimer(id, (*model.CountdownTimer).Stop)
}

// ReactivateTimer marks a timer as running again
func (s *Service) ReactivateTimer(ctx context.Context, id string) (TimerView, error) {
	return s.updateTimer(id, (*model.CountdownTimer).Reactivate)
}

func (s *Service) updateTimer(id string, fn func(*model.CountdownTimer)) (TimerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, err := s.store.Timer(id)
	if err != nil {
		return TimerView{}, err
	}
	fn(timer)
	return timerView(*timer, s.clock.Now()), nil
}

// DeleteTimer removes a timer
func (s *Service) DeleteTimer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.DeleteTimer(id)
}

// AddAlarm creates an active alarm
func (s *Service) AddAlarm(ctx context.Context, req model.CreateAlarmRequest) (AlarmView, error) {
	repeat, err := model.ParseRepeatPolicy(req.Repeat)
	if err != nil {
		return AlarmView{}, model.ValidationError{Kind: model.InvalidRepeat, Reason: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	alarm, err := model.NewAlarm(orDefault(req.Name, DefaultAlarmName), req.Hour, req.Minute, repeat, s.clock.Now())
	if err != nil {
		return AlarmView{}, err
	}

	return alarmView(s.store.AddAlarm(alarm)), nil
}

// ReactivateAlarm turns an alarm back on without recomputing its trigger
func (s *Service) ReactivateAlarm(ctx context.Context, id string) (AlarmView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarm, err := s.store.Alarm(id)
	if err != nil {
		return AlarmView{}, err
	}
	alarm.Reactivate()
	return alarmView(*alarm), nil
}

// DeleteAlarm removes an alarm
func (s *Service) DeleteAlarm(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.DeleteAlarm(id)
}

// AddCountdown creates a date countdown
func (s *Service) AddCountdown(ctx context.Context, req model.CreateCountdownRequest) (CountdownView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	cd, err := model.NewDateCountdown(orDefault(req.Name, DefaultCountdownName), req.TargetDate, now.Location())
	if err != nil {
		return CountdownView{}, err
	}

	return countdownView(s.store.AddCountdown(cd), now), nil
}

// DeleteCountdown removes a date countdown
func (s *Service) DeleteCountdown(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.DeleteCountdown(id)
}

// StartStopwatch starts or resumes the stopwatch
func (s *Service) StartStopwatch(ctx context.Context) StopwatchView {
	return s.updateStopwatch(func(sw *model.Stopwatch, now time.Time) { sw.Start(now) })
}

// PauseStopwatch pauses the stopwatch
func (s *Service) PauseStopwatch(ctx context.Context) StopwatchView {
	return s.updateStopwatch(func(sw *model.Stopwatch, now time.Time) { sw.Pause(now) })
}

// ResetStopwatch stops the stopwatch and clears it
func (s *Service) ResetStopwatch(ctx context.Context) StopwatchView {
	return s.updateStopwatch(func(sw *model.Stopwatch, _ time.Time) { sw.Reset() })
}

func (s *Service) updateStopwatch(fn func(*model.Stopwatch, time.Time)) StopwatchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	fn(&s.store.Stopwatch, now)
	return stopwatchView(s.store.Stopwatch, now)
}

// AddTodo creates a todo item
func (s *Service) AddTodo(ctx context.Context, req model.CreateTodoRequest) (TodoView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	start, err := model.ParseDateTime(req.StartTime, now.Location())
	if err != nil {
		return TodoView{}, err
	}
	end, err := model.ParseDateTime(req.EndTime, now.Location())
	if err != nil {
		return TodoView{}, err
	}

	todo, err := model.NewTodoItem(req.Title, req.Description, start, end)
	if err != nil {
		return TodoView{}, err
	}

	return todoView(s.store.AddTodo(todo), now), nil
}

// CompleteTodo marks a todo as done
func (s *Service) CompleteTodo(ctx context.Context, id string) (TodoView, error) {
	return s.updateTodo(id, (*model.TodoItem).Complete)
}

// ResumeTodo reopens a completed todo
func (s *Service) ResumeTodo(ctx context.Context, id string) (TodoView, error) {
	return s.updateTodo(id, (*model.TodoItem).Resume)
}

func (s *Service) updateTodo(id string, fn func(*model.TodoItem)) (TodoView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, err := s.store.Todo(id)
	if err != nil {
		return TodoView{}, err
	}
	fn(todo)
	return todoView(*todo, s.clock.Now()), nil
}

// DeleteTodo removes a todo
func (s *Service) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.DeleteTodo(id)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
