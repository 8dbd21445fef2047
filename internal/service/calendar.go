package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cirocosta/timerclock/internal/clock"
	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/repository"
)

// CalendarMonth lists the days of a month that carry todos
type CalendarMonth struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  []int              `json:"days"`
	Todos map[int][]TodoView `json:"todos"`
}

// Calendar returns the todo days of the given month and remembers it as the
// calendar cursor. A zero year or month is taken from the remembered cursor,
// or from now when nothing is remembered, so either part can be given alone.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (CalendarMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	cursor := s.store.Calendar
	if cursor.Year == 0 || cursor.Month == 0 {
		cursor = repository.CalendarView{Year: now.Year(), Month: now.Month()}
	}
	if year == 0 {
		year = cursor.Year
	}
	if month == 0 {
		month = cursor.Month
	}
	if month < time.January || month > time.December {
		return CalendarMonth{}, model.ValidationError{Kind: model.InvalidDateFormat, Reason: fmt.Sprintf("month %d out of range", month)}
	}

	s.store.Calendar = repository.CalendarView{Year: year, Month: month}

	loc := now.Location()
	out := CalendarMonth{
		Year:  year,
		Month: int(month),
		Days:  s.store.MarkedDays(year, month, loc),
		Todos: map[int][]TodoView{},
	}
	for _, d := range out.Days {
		for _, t := range s.store.TodosOn(time.Date(year, month, d, 0, 0, 0, 0, loc)) {
			out.Todos[d] = append(out.Todos[d], todoView(t, now))
		}
	}
	return out, nil
}

// ZoneTime is the current time in a named zone
type ZoneTime struct {
	Zone    string `json:"zone"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// WorldClock returns the current time in the named zone
func (s *Service) WorldClock(ctx context.Context, zone string) (ZoneTime, error) {
	t, err := clock.InZone(s.clock.Now(), zone)
	if err != nil {
		return ZoneTime{}, err
	}

	return ZoneTime{
		Zone:    zone,
		Time:    t.Format("15:04:05"),
		Date:    t.Format(model.DateLayout),
		Weekday: t.Weekday().String(),
	}, nil
}
