package scoring

import "sort"

// Result is one finished match.
type Result struct {
	Outcome   string `json:"outcome"`
	Seconds   int    `json:"seconds"`
	Contacts  int    `json:"contacts"`
	Seed      uint64 `json:"seed"`
	Timestamp string `json:"timestamp"`
}

func (r Result) Won() bool {
	return r.Outcome == OutcomeWon
}

// Outcome labels stored in Result.Outcome.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// better orders wins by time, then by fewer monster contacts.
func better(a, b Result) bool {
	if a.Seconds != b.Seconds {
		return a.Seconds < b.Seconds
	}
	return a.Contacts < b.Contacts
}

// History is the set of past results.
type History struct {
	Entries []Result
}

// Wins counts won matches.
func (h History) Wins() int {
	n := 0
	for _, r := range h.Entries {
		if r.Won() {
			n++
		}
	}
	return n
}

// Losses counts lost matches.
func (h History) Losses() int {
	return len(h.Entries) - h.Wins()
}

// BestWin returns the fastest win, or nil if there is none.
func (h History) BestWin() *Result {
	var best *Result
	for i := range h.Entries {
		r := &h.Entries[i]
		if !r.Won() {
			continue
		}
		if best == nil || better(*r, *best) {
			best = r
		}
	}
	return best
}

// TopWins returns up to n wins, fastest first.
func (h History) TopWins(n int) []Result {
	wins := make([]Result, 0, len(h.Entries))
	for _, r := range h.Entries {
		if r.Won() {
			wins = append(wins, r)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return better(wins[i], wins[j])
	})
	if len(wins) < n {
		return wins
	}
	return wins[:n]
}
