package api

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/service"
)

// mockClockService is a mock implementation of ClockService
type mockClockService struct {
	mock.Mock
}

func (m *mockClockService) State(ctx context.Context) service.View {
	return m.Called(ctx).Get(0).(service.View)
}

func (m *mockClockService) RecentEvents(ctx context.Context) []model.Event {
	return m.Called(ctx).Get(0).([]model.Event)
}

func (m *mockClockService) AddTimer(ctx context.Context, req model.CreateTimerRequest) (service.TimerView, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.TimerView), args.Error(1)
}

func (m *mockClockService) StopTimer(ctx context.Context, id string) (service.TimerView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TimerView), args.Error(1)
}

func (m *mockClockService) ReactivateTimer(ctx context.Context, id string) (service.TimerView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TimerView), args.Error(1)
}

func (m *mockClockService) DeleteTimer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClockService) AddAlarm(ctx context.Context, req model.CreateAlarmRequest) (service.AlarmView, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.AlarmView), args.Error(1)
}

func (m *mockClockService) ReactivateAlarm(ctx context.Context, id string) (service.AlarmView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.AlarmView), args.Error(1)
}

func (m *mockClockService) DeleteAlarm(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClockService) AddCountdown(ctx context.Context, req model.CreateCountdownRequest) (service.CountdownView, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.CountdownView), args.Error(1)
}

func (m *mockClockService) DeleteCountdown(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClockService) StartStopwatch(ctx context.Context) service.StopwatchView {
	return m.Called(ctx).Get(0).(service.StopwatchView)
}

func (m *mockClockService) PauseStopwatch(ctx context.Context) service.StopwatchView {
	return m.Called(ctx).Get(0).(service.StopwatchView)
}

func (m *mockClockService) ResetStopwatch(ctx context.Context) service.StopwatchView {
	return m.Called(ctx).Get(0).(service.StopwatchView)
}

func (m *mockClockService) AddTodo(ctx context.Context, req model.CreateTodoRequest) (service.TodoView, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.TodoView), args.Error(1)
}

func (m *mockClockService) CompleteTodo(ctx context.Context, id string) (service.TodoView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TodoView), args.Error(1)
}

func (m *mockClockService) ResumeTodo(ctx context.Context, id string) (service.TodoView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TodoView), args.Error(1)
}

func (m *mockClockService) DeleteTodo(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClockService) Calendar(ctx context.Context, year int, month time.Month) (service.CalendarMonth, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(service.CalendarMonth), args.Error(1)
}

func (m *mockClockService) WorldClock(ctx context.Context, zone string) (service.ZoneTime, error) {
	args := m.Called(ctx, zone)
	return args.Get(0).(service.ZoneTime), args.Error(1)
}
