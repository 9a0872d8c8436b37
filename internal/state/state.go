package state

import (
	"context"
	"fmt"

	"go-glutton/internal/food"
	"go-glutton/internal/grid"
	"go-glutton/internal/monster"
	"go-glutton/internal/snake"

	"github.com/looplab/fsm"
)

type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Banner is the text shown once when the match ends.
func (o Outcome) Banner() string {
	switch o {
	case Won:
		return "Winner!!"
	case Lost:
		return "Game over!!"
	}
	return ""
}

// Status is what the status line shows.
type Status struct {
	ContactCount   int
	ElapsedSeconds int
	Key            Key
	SavedKey       Key
	Outcome        Outcome
}

// State is the single aggregate the controller mutates. Nothing else holds
// a reference to the snake, monster or food.
type State struct {
	Snake   *snake.Snake
	Monster *monster.Monster
	Food    *food.Manager

	ContactCount   int
	ElapsedSeconds int
	Key            Key
	SavedKey       Key

	FSM *fsm.FSM

	onEnd func(Outcome)
}

// NewState wires the aggregate. onEnd, when set, runs exactly once as the
// match reaches its outcome.
func NewState(s *snake.Snake, m *monster.Monster, f *food.Manager, onEnd func(Outcome)) *State {
	st := &State{
		Snake:   s,
		Monster: m,
		Food:    f,
		onEnd:   onEnd,
	}

	st.FSM = fsm.NewFSM(
		"ready",
		getStateTransitions(),
		getStateCallbacks(st),
	)

	return st
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "begin", Src: []string{"ready"}, Dst: "playing"},
		{Name: "win", Src: []string{"playing"}, Dst: "won"},
		{Name: "lose", Src: []string{"playing"}, Dst: "lost"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_won": func(_ context.Context, e *fsm.Event) {
			s.ended(Won)
		},
		"enter_lost": func(_ context.Context, e *fsm.Event) {
			s.ended(Lost)
		},
	}
}

func (s *State) ended(o Outcome) {
	if s.onEnd != nil {
		s.onEnd(o)
	}
}

// Begin starts the match. It reports false if the match already started.
func (s *State) Begin() bool {
	return s.FSM.Event(context.Background(), "begin") == nil
}

// Started reports whether the begin trigger has fired.
func (s *State) Started() bool {
	return !s.FSM.Is("ready")
}

// Active reports whether gameplay ticks should still run.
func (s *State) Active() bool {
	return s.FSM.Is("playing")
}

// Ended reports whether the outcome is terminal.
func (s *State) Ended() bool {
	return s.FSM.Is("won") || s.FSM.Is("lost")
}

func (s *State) Outcome() Outcome {
	switch s.FSM.Current() {
	case "won":
		return Won
	case "lost":
		return Lost
	}
	return Playing
}

// Win latches the Won outcome. The first terminal outcome sticks.
func (s *State) Win() bool {
	return s.FSM.Event(context.Background(), "win") == nil
}

// Lose latches the Lost outcome. The first terminal outcome sticks.
func (s *State) Lose() bool {
	return s.FSM.Event(context.Background(), "lose") == nil
}

// Status returns a snapshot for the status line.
func (s *State) Status() Status {
	return Status{
		ContactCount:   s.ContactCount,
		ElapsedSeconds: s.ElapsedSeconds,
		Key:            s.Key,
		SavedKey:       s.SavedKey,
		Outcome:        s.Outcome(),
	}
}

// SetHeading records a direction key and turns the snake at once.
// It is ignored outside a running match.
func (s *State) SetHeading(d grid.Direction) bool {
	if !s.Active() {
		return false
	}
	s.Key = KeyFor(d)
	s.Snake.SetHeading(d)
	return true
}

// Pause swaps the current key for the pause marker. No-op if already paused.
func (s *State) Pause() bool {
	if !s.Active() || s.Paused() {
		return false
	}
	s.SavedKey = s.Key
	s.Key = KeyPause
	return true
}

// Resume restores the key saved by Pause. No-op if not paused.
func (s *State) Resume() bool {
	if !s.Active() || !s.Paused() {
		return false
	}
	s.Key = s.SavedKey
	s.SavedKey = KeyNone
	return true
}

// TogglePause pauses a running snake or resumes a paused one.
func (s *State) TogglePause() bool {
	if s.Paused() {
		return s.Resume()
	}
	return s.Pause()
}

func (s *State) Paused() bool {
	return s.Key == KeyPause
}

// Moving reports whether the snake should try to move this tick.
func (s *State) Moving() bool {
	_, ok := s.Key.Direction()
	return ok
}
