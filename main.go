package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"go-glutton/internal/game"
	"go-glutton/internal/grid"
	"go-glutton/internal/scheduler"
	"go-glutton/internal/scoring"
	"go-glutton/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Loss banner and errors
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Win banner
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Status line
	boldStyle  = lipgloss.NewStyle().Bold(true)
	tipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Align(lipgloss.Center)
)

const startTip = "Snake game\nClick anywhere to start the game, and enjoy it!"

type LocalState struct {
	Session *game.Session
	Board   *board

	keys keyMap
	help help.Model
}

func initialModel(opts game.Options, storage scoring.ResultStorage) (*LocalState, error) {
	s := &LocalState{
		keys: defaultKeyMap(),
		help: help.New(),
	}

	sess, err := game.NewSession(opts, storage, func() game.Observer {
		s.Board = newBoard()
		return s.Board
	})
	if err != nil {
		return nil, err
	}
	s.Session = sess
	return s, nil
}

func (s *LocalState) Init() tea.Cmd {
	return nil
}

// begin starts the current game and arms its tasks.
func (s *LocalState) begin() tea.Cmd {
	arms := s.Session.Begin()
	if len(arms) == 0 {
		return nil
	}
	return scheduler.Batch(s.Session.Gen, arms)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	g := s.Session.CurrentGame

	switch msg := msg.(type) {
	case scheduler.FireMsg:
		// Timers armed for an earlier game fire into the void.
		if msg.Gen != s.Session.Gen {
			return s, nil
		}
		delay, again := g.HandleTick(msg.Task)
		s.Session.Update()
		s.keys.Restart.SetEnabled(s.Session.IsFinished())
		if !again {
			return s, nil
		}
		return s, scheduler.Cmd(msg.Gen, scheduler.Arming{Task: msg.Task, Delay: delay})

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return s, s.begin()
		}

	case tea.WindowSizeMsg:
		s.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Start):
			return s, s.begin()
		case key.Matches(msg, s.keys.Up):
			g.SetHeading(grid.Up)
		case key.Matches(msg, s.keys.Down):
			g.SetHeading(grid.Down)
		case key.Matches(msg, s.keys.Left):
			g.SetHeading(grid.Left)
		case key.Matches(msg, s.keys.Right):
			g.SetHeading(grid.Right)
		case key.Matches(msg, s.keys.Pause):
			g.TogglePause()
		case key.Matches(msg, s.keys.Restart):
			if err := s.Session.Restart(); err != nil {
				log.Printf("main: restart: %v", err)
				return s, tea.Quit
			}
			s.keys.Restart.SetEnabled(false)
		}
	}

	return s, nil
}

func (s *LocalState) View() string {
	g := s.Session.CurrentGame
	b := s.Board

	display := scoreStyle.Render(b.StatusLine())

	borderStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.ThickBorder())
	display += "\n" + borderStyle.Render(b.Render())

	if !g.State.Started() {
		display += "\n" + tipStyle.Render(startTip)
	}

	if b.banner != "" {
		style := redStyle
		if g.Outcome() == state.Won {
			style = greenStyle
		}
		display += "\n" + boldStyle.Inherit(style).Render(b.banner)
		if sc := s.Session.Scores; sc != nil && g.Outcome() == state.Won && sc.GotBestTime() {
			display += "\n" + greenStyle.Render("New best time! Top 5 wins:")
			for _, r := range sc.History().TopWins(5) {
				display += fmt.Sprintf("\n  * %ds, %d contacts on %s", r.Seconds, r.Contacts, r.Timestamp)
			}
		}
	}

	if sc := s.Session.Scores; sc != nil {
		display += "\n" + historyLine(sc.History())
	}
	if s.Session.RecordErr != nil {
		display += "\n" + redStyle.Render("Could not save result: "+s.Session.RecordErr.Error())
	}

	display += "\n\n" + s.help.View(s.keys)
	return display
}

func historyLine(h scoring.History) string {
	line := fmt.Sprintf("Wins: %d | Losses: %d", h.Wins(), h.Losses())
	if best := h.BestWin(); best != nil {
		line += fmt.Sprintf(" | Best: %ds", best.Seconds)
	}
	return line
}

type seedFlag uint64

func (f *seedFlag) String() string {
	return strconv.FormatUint(uint64(*f), 10)
}

func (f *seedFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -seed=value)")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*f = seedFlag(v)
	return nil
}

func (f *seedFlag) IsBoolFlag() bool { return true }

func main() {
	var seed seedFlag
	var historyPath string
	var noHistory bool
	var debug bool

	flag.Var(&seed, "seed", "Seed the random generator for a reproducible session")
	flag.Var(&seed, "s", "Seed the random generator (shorthand)")

	flag.StringVar(&historyPath, "history", "", "Path of the results history file")
	flag.StringVar(&historyPath, "hf", "", "Path of the results history file (shorthand)")

	flag.BoolVar(&noHistory, "nohistory", false, "Do not read or write the results history")
	flag.BoolVar(&noHistory, "nh", false, "Do not read or write the results history (shorthand)")

	flag.BoolVar(&debug, "debug", false, "Write a debug log to debug.log")
	flag.BoolVar(&debug, "d", false, "Write a debug log to debug.log (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "    -s, --seed=N           Seed the random generator for a reproducible session\n")
		fmt.Fprintf(os.Stderr, "   -hf, --history=PATH     Results history file (default ~/.config/go-glutton/results.json)\n")
		fmt.Fprintf(os.Stderr, "   -nh, --nohistory        Do not read or write the results history\n")
		fmt.Fprintf(os.Stderr, "    -d, --debug            Write a debug log to debug.log\n")
		fmt.Fprintf(os.Stderr, "    -h, --help             Show this help message\n")
	}

	flag.Parse()

	if debug || os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "glutton")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var storage scoring.ResultStorage
	if !noHistory {
		jfs, err := scoring.NewJSONFileStorage(historyPath)
		if err != nil {
			fmt.Printf("Error creating result storage: %v\n", err)
			os.Exit(1)
		}
		log.Printf("main: results history at %s", jfs.Path())
		storage = jfs
	}

	model, err := initialModel(game.Options{Seed: uint64(seed)}, storage)
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}

	if last := lastResult(model.Session); last != nil {
		fmt.Printf("Last game: %s after %ds with %d contacts (seed %d)\n",
			last.Outcome, last.Seconds, last.Contacts, last.Seed)
	}
}

func lastResult(sess *game.Session) *scoring.Result {
	if sess.Scores == nil {
		return nil
	}
	return sess.Scores.Last()
}
