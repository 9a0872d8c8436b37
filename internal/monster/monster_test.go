package monster

import (
	"math"
	"testing"

	"go-glutton/internal/grid"

	"golang.org/x/exp/rand"
)

type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func TestSpawn_Separation(t *testing.T) {
	head := grid.Cell{Col: 13, Row: 15}.Pixel()
	for seed := uint64(1); seed <= 100; seed++ {
		m, err := Spawn(rand.New(rand.NewSource(seed)), head)
		if err != nil {
			t.Fatalf("seed %d: Spawn returned error: %v", seed, err)
		}
		if grid.DistSq(m.Position, head) < MinSeparationSq {
			t.Errorf("seed %d: monster too close at %v", seed, m.Position)
		}
		// Half a cell off the snake lattice on both axes.
		offX := math.Mod(m.Position.X-head.X, grid.CellSize)
		offY := math.Mod(m.Position.Y-head.Y, grid.CellSize)
		if math.Abs(offX) != grid.CellSize/2 || math.Abs(offY) != grid.CellSize/2 {
			t.Errorf("seed %d: monster at %v is not half a cell off the lattice", seed, m.Position)
		}
	}
}

func TestSpawn_Exhausted(t *testing.T) {
	// Every draw lands on the same cell; place the head right next to it.
	rng := fixedRand(0)
	head := grid.Cell{Col: spawnMinCol, Row: spawnMinRow}.Pixel()
	if _, err := Spawn(rng, head); err == nil {
		t.Error("Expected an error when every candidate is too close")
	}
}

func TestPursuitHeading(t *testing.T) {
	origin := grid.Point{}
	tests := []struct {
		name   string
		target grid.Point
		expect grid.Direction
	}{
		{"mostly above", grid.Point{X: 10, Y: 50}, grid.Up},
		{"mostly below", grid.Point{X: -10, Y: -50}, grid.Down},
		{"mostly right", grid.Point{X: 50, Y: 10}, grid.Right},
		{"mostly left", grid.Point{X: -50, Y: 10}, grid.Left},
		{"diagonal tie goes horizontal", grid.Point{X: 30, Y: 30}, grid.Right},
		{"negative tie goes horizontal", grid.Point{X: -30, Y: 30}, grid.Left},
	}

	for _, tt := range tests {
		if got := PursuitHeading(origin, tt.target); got != tt.expect {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expect, got)
		}
	}
}

func TestPursue(t *testing.T) {
	m := &Monster{Position: grid.Point{X: 6, Y: 6}}
	m.Pursue(grid.Point{X: -4, Y: 100})
	if m.Heading != grid.Up || m.Position != (grid.Point{X: 6, Y: 26}) {
		t.Errorf("Expected one step up to (6,26), got %v heading %v", m.Position, m.Heading)
	}
}

func TestNextDelay_Range(t *testing.T) {
	if got := NextDelay(fixedRand(0)); got != MinDelay {
		t.Errorf("Expected %v, got %v", MinDelay, got)
	}
	if got := NextDelay(fixedRand(310)); got != MaxDelay {
		t.Errorf("Expected %v, got %v", MaxDelay, got)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		d := NextDelay(rng)
		if d < MinDelay || d > MaxDelay {
			t.Fatalf("Delay %v out of range", d)
		}
	}
}
