package widget

import (
	"errors"
	"fmt"
	"time"
)

// AutoplayDelay is how long the player waits after entering the viewport
// before firing EventIntersect.
const AutoplayDelay = 500 * time.Millisecond

// ErrInvalidTransition is returned for an event the current state does not
// accept.
var ErrInvalidTransition = errors.New("widget: invalid video transition")

// VideoState is the lifecycle of an embedded video.
type VideoState string

const (
	VideoIdle    VideoState = "idle"
	VideoPlaying VideoState = "playing"
	VideoErrored VideoState = "errored"
)

// VideoEvent drives a VideoState.
type VideoEvent string

const (
	EventIntersect VideoEvent = "intersect"
	EventClick     VideoEvent = "click"
	EventError     VideoEvent = "error"
	EventRetry     VideoEvent = "retry"
)

var videoTransitions = map[VideoState]map[VideoEvent]VideoState{
	VideoIdle: {
		EventIntersect: VideoPlaying,
		EventClick:     VideoPlaying,
	},
	VideoPlaying: {
		EventError: VideoErrored,
	},
	VideoErrored: {
		EventRetry: VideoIdle,
	},
}

// ParseVideoState maps a query value to a state. Unknown values are idle.
func ParseVideoState(s string) VideoState {
	switch st := VideoState(s); st {
	case VideoPlaying, VideoErrored:
		return st
	}
	return VideoIdle
}

// Next returns the state after ev. Unknown pairs return the current state
// and ErrInvalidTransition.
func (s VideoState) Next(ev VideoEvent) (VideoState, error) {
	if to, ok := videoTransitions[s][ev]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, s)
}

// Events lists the events s accepts, in a stable order.
func (s VideoState) Events() []VideoEvent {
	var out []VideoEvent
	for _, ev := range []VideoEvent{EventIntersect, EventClick, EventError, EventRetry} {
		if _, ok := videoTransitions[s][ev]; ok {
			out = append(out, ev)
		}
	}
	return out
}
