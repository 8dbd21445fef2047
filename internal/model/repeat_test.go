package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	// 2030-01-02 is a Wednesday
	wed := time.Date(2030, 1, 2, 7, 30, 0, 0, time.UTC)

	for name, tc := range map[string]struct {
		from   time.Time
		policy RepeatPolicy
		want   time.Time
	}{
		"once adds a day": {
			from: wed, policy: RepeatOnce,
			want: time.Date(2030, 1, 3, 7, 30, 0, 0, time.UTC),
		},
		"daily adds a day": {
			from: wed, policy: RepeatDaily,
			want: time.Date(2030, 1, 3, 7, 30, 0, 0, time.UTC),
		},
		"weekend from wednesday lands on saturday": {
			from: wed, policy: RepeatWeekend,
			want: time.Date(2030, 1, 5, 7, 30, 0, 0, time.UTC),
		},
		"weekend from saturday lands on sunday": {
			from: time.Date(2030, 1, 5, 7, 30, 0, 0, time.UTC), policy: RepeatWeekend,
			want: time.Date(2030, 1, 6, 7, 30, 0, 0, time.UTC),
		},
		"weekend from sunday lands on next saturday": {
			from: time.Date(2030, 1, 6, 7, 30, 0, 0, time.UTC), policy: RepeatWeekend,
			want: time.Date(2030, 1, 12, 7, 30, 0, 0, time.UTC),
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Advance(tc.from, tc.policy))
		})
	}
}

func TestAdvanceWeekendAlwaysLandsOnWeekend(t *testing.T) {
	t.Parallel()

	start := time.Date(2029, 12, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24*60; h += 5 {
		from := start.Add(time.Duration(h) * time.Hour)
		got := Advance(from, RepeatWeekend)

		wd := got.Weekday()
		require.True(t, wd == time.Saturday || wd == time.Sunday, "from %s got %s", from, wd)
		require.True(t, got.After(from))
		require.LessOrEqual(t, got.Sub(from), 7*24*time.Hour)
	}
}

func TestAdvanceKeepsWallClockAcrossDST(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// DST starts in Berlin on 2030-03-31
	before := time.Date(2030, 3, 30, 7, 0, 0, 0, loc)
	got := Advance(before, RepeatDaily)

	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 31, got.Day())
}

func TestRepeatPolicyText(t *testing.T) {
	t.Parallel()

	for _, p := range []RepeatPolicy{RepeatOnce, RepeatDaily, RepeatWeekend} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var back RepeatPolicy
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, p, back)
	}

	_, err := RepeatPolicy(42).MarshalText()
	assert.Error(t, err)

	var p RepeatPolicy
	assert.Error(t, p.UnmarshalText([]byte("hourly")))
}
