package game

import (
	"fmt"
	"log"

	"go-glutton/internal/scheduler"
	"go-glutton/internal/scoring"
	"go-glutton/internal/state"
)

// Session runs successive games in one program and records how each ended.
type Session struct {
	CurrentGame *Game
	Options     Options
	Scores      *scoring.Scoring // nil when history is disabled

	// Gen increments per game so timers armed for an older game can be told
	// apart from the current one.
	Gen    int
	Played int

	// RecordErr holds the last failure to persist a result.
	RecordErr error

	newObserver func() Observer
	recorded    bool
}

// NewSession starts the first game. storage may be nil to skip recording;
// newObserver builds a fresh renderer for every game.
func NewSession(opts Options, storage scoring.ResultStorage, newObserver func() Observer) (*Session, error) {
	s := &Session{
		Options:     opts,
		newObserver: newObserver,
	}

	if storage != nil {
		sc, err := scoring.InitScoring(storage)
		if err != nil {
			return nil, err
		}
		s.Scores = sc
	}

	if err := s.NextGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NextGame replaces the current game with a fresh one. Follow-up games draw
// their seed from the previous game so a seeded session stays reproducible.
func (s *Session) NextGame() error {
	opts := s.Options
	if s.CurrentGame != nil {
		opts.Seed = s.CurrentGame.rng.Uint64()
	}

	var obs Observer = NopObserver{}
	if s.newObserver != nil {
		obs = s.newObserver()
	}

	g, err := NewGame(opts, obs)
	if err != nil {
		return fmt.Errorf("game %d: %w", s.Played+1, err)
	}

	s.CurrentGame = g
	s.Gen++
	s.recorded = false
	return nil
}

// Begin starts the current game and returns its first task armings.
func (s *Session) Begin() []scheduler.Arming {
	return s.CurrentGame.Begin()
}

// Restart moves on to a new game once the current one is over.
func (s *Session) Restart() error {
	if !s.IsFinished() {
		return nil
	}
	return s.NextGame()
}

// Update records the current game's result the first time it is seen finished.
func (s *Session) Update() {
	g := s.CurrentGame
	if g == nil || s.recorded || !g.State.Ended() {
		return
	}
	s.recorded = true
	s.Played++

	if s.Scores == nil {
		return
	}

	outcome := scoring.OutcomeLost
	if g.Outcome() == state.Won {
		outcome = scoring.OutcomeWon
	}
	result := scoring.NewResult(outcome, g.State.ElapsedSeconds, g.State.ContactCount, g.Seed)
	if err := s.Scores.Record(result); err != nil {
		log.Printf("session: record result: %v", err)
		s.RecordErr = err
		return
	}
	s.RecordErr = nil
}

// IsFinished reports whether the current game has reached its outcome.
func (s *Session) IsFinished() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.Ended()
}
