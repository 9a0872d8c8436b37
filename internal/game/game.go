package game

import (
	"fmt"
	"log"
	"time"

	"go-glutton/internal/collision"
	"go-glutton/internal/food"
	"go-glutton/internal/grid"
	"go-glutton/internal/monster"
	"go-glutton/internal/scheduler"
	"go-glutton/internal/snake"
	"go-glutton/internal/state"

	"golang.org/x/exp/rand"
)

// Task periods.
const (
	SnakeFirstDelay   = 100 * time.Millisecond
	SnakeGrowingDelay = 600 * time.Millisecond
	SnakeSteadyDelay  = 380 * time.Millisecond
	MonsterFirstDelay = time.Second
	FoodFirstDelay    = 5 * time.Second
	FoodDelay         = 6 * time.Second
	ClockDelay        = 100 * time.Millisecond
)

type Options struct {
	Seed uint64           // 0 picks a seed from the clock
	Now  func() time.Time // wall clock; defaults to time.Now
}

// Game drives one match. It is not safe for concurrent use: the caller
// funnels timer fires and input through a single goroutine.
type Game struct {
	State *state.State
	Seed  uint64

	observer Observer
	rng      *rand.Rand
	now      func() time.Time
	started  time.Time
}

// NewGame spawns the snake, monster and food. Nothing moves until Begin.
func NewGame(opts Options, obs Observer) (*Game, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}

	g := &Game{
		Seed:     seed,
		observer: obs,
		rng:      rand.New(rand.NewSource(seed)),
		now:      now,
	}

	s := snake.New(snake.StartCell)
	m, err := monster.Spawn(g.rng, s.HeadPixel())
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	f, err := food.SpawnInitial(g.rng, s.Head)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.State = state.NewState(s, m, f, g.ended)

	obs.SnakeMoved(s.HeadPixel(), s.Heading)
	obs.MonsterMoved(m.Position, m.Heading)
	obs.StatusChanged(g.State.Status())
	return g, nil
}

// Begin starts the match and returns the first arming of every task.
// Only the first call does anything.
func (g *Game) Begin() []scheduler.Arming {
	if !g.State.Begin() {
		return nil
	}
	g.started = g.now()
	log.Printf("game: begin seed=%d monster=%v", g.Seed, g.State.Monster.Position)

	for _, item := range g.State.Food.Items {
		g.observer.FoodChanged(item, item.Cell.Pixel())
	}

	return []scheduler.Arming{
		{Task: scheduler.Clock, Delay: 0},
		{Task: scheduler.Snake, Delay: SnakeFirstDelay},
		{Task: scheduler.Monster, Delay: MonsterFirstDelay},
		{Task: scheduler.Food, Delay: FoodFirstDelay},
	}
}

// HandleTick runs a fired task. It returns the delay before the task should
// fire again, or false once the match is over.
func (g *Game) HandleTick(task scheduler.Task) (time.Duration, bool) {
	if !g.State.Active() {
		return 0, false
	}

	switch task {
	case scheduler.Snake:
		return g.advance()
	case scheduler.Monster:
		return g.pursue()
	case scheduler.Food:
		return g.toggleFood()
	case scheduler.Clock:
		return g.tickClock()
	}
	return 0, false
}

// SetHeading steers the snake. The turn shows at once; whether the snake can
// actually go that way is decided on its next tick.
func (g *Game) SetHeading(d grid.Direction) {
	if !g.State.SetHeading(d) {
		return
	}
	g.observer.SnakeMoved(g.State.Snake.HeadPixel(), g.State.Snake.Heading)
	g.observer.StatusChanged(g.State.Status())
}

func (g *Game) Pause() {
	if g.State.Pause() {
		g.observer.StatusChanged(g.State.Status())
	}
}

func (g *Game) Resume() {
	if g.State.Resume() {
		g.observer.StatusChanged(g.State.Status())
	}
}

// TogglePause is bound to the pause key.
func (g *Game) TogglePause() {
	if g.State.TogglePause() {
		g.observer.StatusChanged(g.State.Status())
	}
}

func (g *Game) Outcome() state.Outcome {
	return g.State.Outcome()
}

// Elapsed is the time since Begin.
func (g *Game) Elapsed() time.Duration {
	if !g.State.Started() {
		return 0
	}
	return g.now().Sub(g.started)
}

func (g *Game) advance() (time.Duration, bool) {
	s := g.State
	g.checkFood()
	if s.Ended() {
		return 0, false
	}

	if s.Moving() && s.Snake.CanMove() {
		mv := s.Snake.Move()
		g.observer.TrailStamped(mv.Stamped.Pixel())
		if mv.DidEvict {
			g.observer.TrailCleared(mv.Evicted.Pixel())
		}
		g.observer.SnakeMoved(s.Snake.HeadPixel(), s.Snake.Heading)

		g.checkFood()
		if !s.Ended() {
			g.checkCaught()
		}
		if s.Ended() {
			return 0, false
		}
	}

	if s.Snake.Growing() {
		return SnakeGrowingDelay, true
	}
	return SnakeSteadyDelay, true
}

// checkFood eats whatever visible food sits under the head and latches the
// win once every item is eaten and the trail has caught up.
func (g *Game) checkFood() {
	s := g.State
	for _, id := range collision.FoodAt(s.Snake.Head, s.Food.Items) {
		value := s.Food.Consume(id)
		s.Snake.Grow(value)
		item, _ := s.Food.Item(id)
		g.observer.FoodChanged(item, item.Cell.Pixel())
		log.Printf("game: ate %d at %v, target length %d", value, item.Cell, s.Snake.TargetLength)
	}

	if s.Food.AllConsumed() && s.Snake.FullLength() {
		s.Win()
	}
}

func (g *Game) checkCaught() {
	s := g.State
	if collision.Touches(s.Monster.Position, s.Snake.HeadPixel()) {
		s.Lose()
	}
}

func (g *Game) pursue() (time.Duration, bool) {
	s := g.State
	s.Monster.Pursue(s.Snake.HeadPixel())
	g.observer.MonsterMoved(s.Monster.Position, s.Monster.Heading)

	if collision.TouchesAny(s.Monster.Position, s.Snake.Body) {
		s.ContactCount++
		g.observer.StatusChanged(s.Status())
	}
	g.checkCaught()
	if s.Ended() {
		return 0, false
	}
	return monster.NextDelay(g.rng), true
}

func (g *Game) toggleFood() (time.Duration, bool) {
	if item, ok := g.State.Food.Toggle(g.rng); ok {
		g.observer.FoodChanged(item, item.Cell.Pixel())
	}
	return FoodDelay, true
}

func (g *Game) tickClock() (time.Duration, bool) {
	if g.syncElapsed() {
		g.observer.StatusChanged(g.State.Status())
	}
	return ClockDelay, true
}

// syncElapsed refreshes the whole-second counter and reports whether it changed.
func (g *Game) syncElapsed() bool {
	sec := int(g.Elapsed() / time.Second)
	if sec == g.State.ElapsedSeconds {
		return false
	}
	g.State.ElapsedSeconds = sec
	return true
}

// ended runs once, from the state machine, when the outcome latches.
func (g *Game) ended(o state.Outcome) {
	g.syncElapsed()
	log.Printf("game: %s after %ds with %d contacts", o, g.State.ElapsedSeconds, g.State.ContactCount)
	g.observer.StatusChanged(g.State.Status())
	g.observer.Banner(o.Banner())
}
