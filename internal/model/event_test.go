package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventKindText(t *testing.T) {
	t.Parallel()

	for kind := TimerFinished; kind <= TodoEnded; kind++ {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var got EventKind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, kind, got)
	}

	var k EventKind
	assert.Error(t, k.UnmarshalText([]byte("timer-exploded")))
}

func TestEventString(t *testing.T) {
	t.Parallel()

	ev := Event{Kind: AlarmFired, Name: "Wake", At: time.Date(2030, time.January, 5, 7, 30, 0, 0, time.UTC)}

	assert.Equal(t, `alarm-fired "Wake" at 2030-01-05 07:30:00`, ev.String())
}
