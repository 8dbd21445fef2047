package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlarm(t *testing.T) {
	t.Parallel()

	// Wednesday 2030-01-02 10:00
	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)

	for name, tc := range map[string]struct {
		hour, minute int
		repeat       RepeatPolicy
		want         time.Time
		wantErr      error
	}{
		"later today": {
			hour: 11, minute: 15, repeat: RepeatOnce,
			want: time.Date(2030, 1, 2, 11, 15, 0, 0, time.UTC),
		},
		"already passed rolls to tomorrow": {
			hour: 9, minute: 0, repeat: RepeatDaily,
			want: time.Date(2030, 1, 3, 9, 0, 0, 0, time.UTC),
		},
		"exactly now stays today": {
			hour: 10, minute: 0, repeat: RepeatDaily,
			want: now,
		},
		"weekend passed on weekday rolls to saturday": {
			hour: 9, minute: 0, repeat: RepeatWeekend,
			want: time.Date(2030, 1, 5, 9, 0, 0, 0, time.UTC),
		},
		"weekend later on weekday still rolls to saturday": {
			hour: 18, minute: 0, repeat: RepeatWeekend,
			want: time.Date(2030, 1, 5, 18, 0, 0, 0, time.UTC),
		},
		"hour out of range":   {hour: 24, minute: 0, wantErr: ErrInvalidTimeOfDay},
		"minute out of range": {hour: 7, minute: 60, wantErr: ErrInvalidTimeOfDay},
		"negative hour":       {hour: -1, minute: 0, wantErr: ErrInvalidTimeOfDay},
		"unknown repeat":      {hour: 7, minute: 0, repeat: RepeatPolicy(9), wantErr: ErrInvalidRepeat},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			alarm, err := NewAlarm("wake", tc.hour, tc.minute, tc.repeat, now)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, alarm.AlarmTime)
			assert.True(t, alarm.Active)
			assert.False(t, alarm.AlarmTime.Before(now))
		})
	}
}

func TestAlarmDailyScenario(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	alarm, err := NewAlarm("standup", 9, 30, RepeatDaily, now)
	require.NoError(t, err)

	tomorrow := time.Date(2030, 1, 3, 9, 30, 0, 0, time.UTC)
	require.Equal(t, tomorrow, alarm.AlarmTime)

	_, fired := alarm.Check(tomorrow.Add(-time.Second))
	assert.False(t, fired)

	ev, fired := alarm.Check(tomorrow)
	require.True(t, fired)
	assert.Equal(t, AlarmFired, ev.Kind)
	assert.Equal(t, "standup", ev.Name)
	assert.Equal(t, tomorrow, ev.At)
	assert.Equal(t, tomorrow.AddDate(0, 0, 1), alarm.AlarmTime)
	assert.True(t, alarm.Active)

	_, fired = alarm.Check(tomorrow.Add(time.Second))
	assert.False(t, fired, "the same firing is not observed twice")
}

func TestAlarmOnceDeactivates(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	alarm, err := NewAlarm("pills", 10, 5, RepeatOnce, now)
	require.NoError(t, err)

	at := alarm.AlarmTime
	_, fired := alarm.Check(at.Add(30 * time.Second))
	require.True(t, fired)
	assert.False(t, alarm.Active)
	assert.Equal(t, at, alarm.AlarmTime)

	_, fired = alarm.Check(at.AddDate(0, 0, 2))
	assert.False(t, fired, "inactive alarms are skipped")

	alarm.Reactivate()
	assert.Equal(t, at, alarm.AlarmTime, "reactivation does not recompute the trigger")
	_, fired = alarm.Check(at.Add(time.Hour))
	assert.True(t, fired, "a past trigger fires right after reactivation")
}

func TestAlarmLateTicksFireOnce(t *testing.T) {
	t.Parallel()

	created := time.Date(2030, 1, 2, 6, 0, 0, 0, time.UTC)

	for name, tc := range map[string]struct {
		resumed  time.Time
		wantNext time.Time
	}{
		"three days late": {
			resumed:  time.Date(2030, 1, 5, 9, 0, 0, 0, time.UTC),
			wantNext: time.Date(2030, 1, 6, 7, 0, 0, 0, time.UTC),
		},
		"late by whole days lands on an occurrence": {
			resumed:  time.Date(2030, 1, 5, 7, 0, 0, 0, time.UTC),
			wantNext: time.Date(2030, 1, 6, 7, 0, 0, 0, time.UTC),
		},
		"just before the next occurrence": {
			resumed:  time.Date(2030, 1, 5, 6, 59, 0, 0, time.UTC),
			wantNext: time.Date(2030, 1, 5, 7, 0, 0, 0, time.UTC),
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			alarm, err := NewAlarm("wake", 7, 0, RepeatDaily, created)
			require.NoError(t, err)
			due := alarm.AlarmTime

			var events []Event
			for i := 0; i < 5; i++ {
				if ev, fired := alarm.Check(tc.resumed.Add(time.Duration(i) * time.Second)); fired {
					events = append(events, ev)
				}
			}

			require.Len(t, events, 1)
			assert.Equal(t, due, events[0].At)
			assert.Equal(t, tc.wantNext, alarm.AlarmTime)
			assert.True(t, alarm.Active)
		})
	}
}

func TestAlarmWeekendCatchUpSkipsToNextWeekend(t *testing.T) {
	t.Parallel()

	// Wednesday
	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	alarm, err := NewAlarm("hike", 8, 0, RepeatWeekend, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2030, 1, 5, 8, 0, 0, 0, time.UTC), alarm.AlarmTime)

	// the following Wednesday, a whole weekend later
	_, fired := alarm.Check(time.Date(2030, 1, 16, 12, 0, 0, 0, time.UTC))
	require.True(t, fired)
	assert.Equal(t, time.Date(2030, 1, 19, 8, 0, 0, 0, time.UTC), alarm.AlarmTime)
	assert.Equal(t, time.Saturday, alarm.AlarmTime.Weekday())
}

func TestAlarmKeepsTimeOfDayAfterDSTGap(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts in New York on 2030-03-10 at 02:00, so 02:30 does not exist
	now := time.Date(2030, 3, 9, 10, 0, 0, 0, loc)
	alarm, err := NewAlarm("night shift", 2, 30, RepeatDaily, now)
	require.NoError(t, err)

	_, _, day := alarm.AlarmTime.Date()
	require.Equal(t, 10, day, "the gap day still gets an occurrence")

	_, fired := alarm.Check(alarm.AlarmTime)
	require.True(t, fired)

	want := time.Date(2030, 3, 11, 2, 30, 0, 0, loc)
	assert.True(t, want.Equal(alarm.AlarmTime), "got %s", alarm.AlarmTime)
	assert.Equal(t, 2, alarm.AlarmTime.Hour())
	assert.Equal(t, 30, alarm.AlarmTime.Minute())

	_, fired = alarm.Check(want)
	require.True(t, fired)
	assert.True(t, time.Date(2030, 3, 12, 2, 30, 0, 0, loc).Equal(alarm.AlarmTime), "got %s", alarm.AlarmTime)
}

func TestAlarmWeekendStaysOnWeekend(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	alarm, err := NewAlarm("hike", 8, 0, RepeatWeekend, now)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		wd := alarm.AlarmTime.Weekday()
		require.True(t, wd == time.Saturday || wd == time.Sunday, "got %s", wd)

		_, fired := alarm.Check(alarm.AlarmTime)
		require.True(t, fired)
	}
}
