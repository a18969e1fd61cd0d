package app

import (
	"fmt"

	"github.com/bft-labs/wallpick/pkg/log"
)

// State is a step of a single wallpick run.
type State int

const (
	StateStart State = iota
	StateResolutionDetected
	StateAspectClassified
	StateThemeDetected
	StatePathResolved
	StateApplied
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateResolutionDetected:
		return "ResolutionDetected"
	case StateAspectClassified:
		return "AspectClassified"
	case StateThemeDetected:
		return "ThemeDetected"
	case StatePathResolved:
		return "PathResolved"
	case StateApplied:
		return "Applied"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateApplied || s == StateFailed
}

// EventEmitter is called when the run state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// Lifecycle tracks the linear state machine of one run.
// Each state may only advance to its successor, or to StateFailed.
type Lifecycle struct {
	state        State
	logger       log.Logger
	eventEmitter EventEmitter
}

// NewLifecycle creates a lifecycle in StateStart.
func NewLifecycle(logger log.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateStart,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// TransitionTo moves to newState, rejecting anything but the next step or a failure.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	oldState := l.state

	valid := !oldState.Terminal() &&
		(newState == StateFailed || newState == oldState+1)
	if !valid {
		return fmt.Errorf("invalid state transition %s -> %s", oldState, newState)
	}

	l.state = newState

	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Debug("state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)

	return nil
}
