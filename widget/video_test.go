package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoValidTransitions(t *testing.T) {
	tests := []struct {
		from VideoState
		ev   VideoEvent
		to   VideoState
	}{
		{VideoIdle, EventIntersect, VideoPlaying},
		{VideoIdle, EventClick, VideoPlaying},
		{VideoPlaying, EventError, VideoErrored},
		{VideoErrored, EventRetry, VideoIdle},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev), func(t *testing.T) {
			got, err := tt.from.Next(tt.ev)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestVideoRejectsOtherTransitions(t *testing.T) {
	states := []VideoState{VideoIdle, VideoPlaying, VideoErrored}
	events := []VideoEvent{EventIntersect, EventClick, EventError, EventRetry}
	valid := 0
	for _, s := range states {
		for _, ev := range events {
			got, err := s.Next(ev)
			if err == nil {
				valid++
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, s, got, "state unchanged on %s/%s", s, ev)
		}
	}
	assert.Equal(t, 4, valid)
}

func TestVideoNoShortcuts(t *testing.T) {
	_, err := VideoIdle.Next(EventError)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	for _, ev := range []VideoEvent{EventIntersect, EventClick, EventError} {
		got, _ := VideoErrored.Next(ev)
		assert.Equal(t, VideoErrored, got)
	}
}

func TestParseVideoState(t *testing.T) {
	assert.Equal(t, VideoPlaying, ParseVideoState("playing"))
	assert.Equal(t, VideoErrored, ParseVideoState("errored"))
	assert.Equal(t, VideoIdle, ParseVideoState("bogus"))
	assert.Equal(t, []VideoEvent{EventIntersect, EventClick}, VideoIdle.Events())
}
