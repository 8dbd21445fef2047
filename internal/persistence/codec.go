package persistence

import (
	"fmt"
	"math"
	"time"

	"github.com/cirocosta/timerclock/internal/model"
	"github.com/cirocosta/timerclock/internal/repository"
)

// Codec converts between a repository.Store and a Document
type Codec struct {
	// Location used to render and parse instants and dates. Defaults to
	// time.Local.
	Location *time.Location
}

func (c Codec) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Encode snapshots s at now. The stopwatch is stored as its elapsed time at
// now, so a running stopwatch resumes from that value.
func (c Codec) Encode(s *repository.Store, now time.Time) Document {
	loc := c.loc()
	doc := Document{
		Timers:       []TimerRecord{},
		Alarms:       []AlarmRecord{},
		Countdowns:   []CountdownRecord{},
		Todos:        []TodoRecord{},
		CurrentMonth: int(s.Calendar.Month),
		CurrentYear:  s.Calendar.Year,
	}

	for _, t := range s.Timers() {
		doc.Timers = append(doc.Timers, TimerRecord{
			Type:         typeTimer,
			ID:           t.ID,
			Name:         t.Name,
			TotalSeconds: t.TotalSeconds,
			EndTime:      t.EndTime.In(loc).Format(model.DateTimeLayout),
			Running:      t.Running,
		})
	}

	for _, a := range s.Alarms() {
		doc.Alarms = append(doc.Alarms, AlarmRecord{
			Type:      typeAlarm,
			ID:        a.ID,
			Name:      a.Name,
			Hour:      a.Hour,
			Minute:    a.Minute,
			Repeat:    a.Repeat.String(),
			AlarmTime: a.AlarmTime.In(loc).Format(model.DateTimeLayout),
			Active:    a.Active,
		})
	}

	for _, cd := range s.Countdowns() {
		doc.Countdowns = append(doc.Countdowns, CountdownRecord{
			Type:       typeCountdown,
			ID:         cd.ID,
			Name:       cd.Name,
			TargetDate: cd.TargetDate.Format(model.DateLayout),
		})
	}

	doc.Stopwatch = &StopwatchRecord{
		Type:        typeStopwatch,
		ElapsedTime: s.Stopwatch.Read(now).Seconds(),
		Running:     s.Stopwatch.Running(),
	}

	for _, t := range s.Todos() {
		doc.Todos = append(doc.Todos, TodoRecord{
			Type:          typeTodo,
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			StartTime:     c.formatOptional(t.StartTime),
			EndTime:       c.formatOptional(t.EndTime),
			Completed:     t.Completed,
			NotifiedStart: t.NotifiedStart,
			NotifiedEnd:   t.NotifiedEnd,
		})
	}

	return doc
}

// Decode rebuilds a store from doc as of now. Records without an ID get a
// fresh one. Any malformed record fails the whole document.
func (c Codec) Decode(doc Document, now time.Time) (*repository.Store, error) {
	s := repository.NewStore()

	for i, r := range doc.Timers {
		end, err := c.parseTime(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("timer %d end_time: %w", i, err)
		}
		s.AddTimer(model.CountdownTimer{
			ID:           r.ID,
			Name:         r.Name,
			TotalSeconds: r.TotalSeconds,
			EndTime:      end,
			Running:      r.Running,
		})
	}

	for i, r := range doc.Alarms {
		repeat, err := model.ParseRepeatPolicy(r.Repeat)
		if err != nil {
			return nil, fmt.Errorf("alarm %d: %w", i, err)
		}
		if r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
			return nil, fmt.Errorf("alarm %d: %02d:%02d is not a time of day", i, r.Hour, r.Minute)
		}
		at, err := c.parseTime(r.AlarmTime)
		if err != nil {
			return nil, fmt.Errorf("alarm %d alarm_time: %w", i, err)
		}
		s.AddAlarm(model.Alarm{
			ID:        r.ID,
			Name:      r.Name,
			Hour:      r.Hour,
			Minute:    r.Minute,
			Repeat:    repeat,
			AlarmTime: at,
			Active:    r.Active,
		})
	}

	for i, r := range doc.Countdowns {
		target, err := time.ParseInLocation(model.DateLayout, r.TargetDate, c.loc())
		if err != nil {
			return nil, fmt.Errorf("countdown %d target_date: %w", i, err)
		}
		s.AddCountdown(model.DateCountdown{ID: r.ID, Name: r.Name, TargetDate: target})
	}

	if r := doc.Stopwatch; r != nil {
		if math.IsNaN(r.ElapsedTime) || math.IsInf(r.ElapsedTime, 0) {
			return nil, fmt.Errorf("stopwatch elapsed_time is not a number")
		}
		elapsed := time.Duration(math.Round(r.ElapsedTime * float64(time.Second)))
		s.Stopwatch = model.RestoreStopwatch(elapsed, r.Running, now)
	}

	for i, r := range doc.Todos {
		start, err := c.parseOptional(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("todo %d start_time: %w", i, err)
		}
		end, err := c.parseOptional(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("todo %d end_time: %w", i, err)
		}
		s.AddTodo(model.TodoItem{
			ID:            r.ID,
			Title:         r.Title,
			Description:   r.Description,
			StartTime:     start,
			EndTime:       end,
			Completed:     r.Completed,
			NotifiedStart: r.NotifiedStart,
			NotifiedEnd:   r.NotifiedEnd,
		})
	}

	s.Calendar = repository.CalendarView{Year: doc.CurrentYear, Month: time.Month(doc.CurrentMonth)}
	if s.Calendar.Year == 0 || s.Calendar.Month < time.January || s.Calendar.Month > time.December {
		s.Calendar = repository.CalendarView{Year: now.Year(), Month: now.Month()}
	}

	return s, nil
}

func (c Codec) parseTime(v string) (time.Time, error) {
	return time.ParseInLocation(model.DateTimeLayout, v, c.loc())
}

func (c Codec) parseOptional(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := c.parseTime(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c Codec) formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.In(c.loc()).Format(model.DateTimeLayout)
	return &v
}
