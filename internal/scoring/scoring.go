package scoring

import (
	"fmt"
	"time"
)

// Scoring records finished matches and answers questions about past ones.
type Scoring struct {
	storage  ResultStorage
	history  History
	last     *Result
	prevBest *Result
}

// InitScoring loads the existing history from storage.
func InitScoring(storage ResultStorage) (*Scoring, error) {
	entries, err := storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load result history: %w", err)
	}
	return &Scoring{
		storage: storage,
		history: History{Entries: entries},
	}, nil
}

// NewResult stamps a result with the current time.
func NewResult(outcome string, seconds, contacts int, seed uint64) Result {
	return Result{
		Outcome:   outcome,
		Seconds:   seconds,
		Contacts:  contacts,
		Seed:      seed,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Record appends the result to the history and persists it. Storage is
// re-read first so results written by another run are kept.
func (s *Scoring) Record(r Result) error {
	s.prevBest = nil
	if best := s.history.BestWin(); best != nil {
		copied := *best
		s.prevBest = &copied
	}
	s.history.Entries = append(s.history.Entries, r)
	s.last = &r

	all, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load results for saving: %w", err)
	}
	return s.storage.SaveAll(append(all, r))
}

// GotBestTime reports whether the last recorded result is a win that beats
// every earlier win.
func (s *Scoring) GotBestTime() bool {
	if s.last == nil || !s.last.Won() {
		return false
	}
	return s.prevBest == nil || better(*s.last, *s.prevBest)
}

// Last returns the most recently recorded result.
func (s *Scoring) Last() *Result {
	return s.last
}

func (s *Scoring) History() History {
	return s.history
}

func (s *Scoring) BestWin() *Result {
	return s.history.BestWin()
}
