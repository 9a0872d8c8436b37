// Package scheduler arms the game's periodic tasks. Every task re-arms itself
// from its own handler; there is no central tick loop.
package scheduler

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Task int

const (
	Snake Task = iota
	Monster
	Food
	Clock
)

func (t Task) String() string {
	switch t {
	case Snake:
		return "snake"
	case Monster:
		return "monster"
	case Food:
		return "food"
	case Clock:
		return "clock"
	}
	return fmt.Sprintf("Task(%d)", int(t))
}

// Arming asks for task to fire after Delay.
type Arming struct {
	Task  Task
	Delay time.Duration
}

// Handler runs a fired task and says whether, and when, to fire it again.
type Handler func(Task) (time.Duration, bool)

// FireMsg is delivered to the bubbletea program when a task's timer expires.
// Gen lets the program drop timers armed for an earlier game.
type FireMsg struct {
	Task Task
	Gen  int
	At   time.Time
}

// Cmd arms a task on the bubbletea runtime.
func Cmd(gen int, a Arming) tea.Cmd {
	return tea.Tick(a.Delay, func(t time.Time) tea.Msg {
		return FireMsg{Task: a.Task, Gen: gen, At: t}
	})
}

// Batch arms several tasks at once.
func Batch(gen int, arms []Arming) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(arms))
	for _, a := range arms {
		cmds = append(cmds, Cmd(gen, a))
	}
	return tea.Batch(cmds...)
}
