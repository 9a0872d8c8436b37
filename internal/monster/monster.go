package monster

import (
	"fmt"
	"math"
	"time"

	"go-glutton/internal/grid"
)

const (
	// StepSize is how far the monster travels per tick, in pixels.
	StepSize = 20.0
	// MinSeparationSq keeps the spawn point away from the snake head.
	MinSeparationSq = 2500.0

	MinDelay = 370 * time.Millisecond
	MaxDelay = 680 * time.Millisecond
)

// The monster spawns on a cell in this window, shifted half a cell so it
// always sits between snake lattice points.
const (
	spawnMinCol = 2
	spawnMaxCol = 22
	spawnMinRow = 2
	spawnMaxRow = 14
)

// Monster moves continuously in render space.
type Monster struct {
	Position grid.Point
	Heading  grid.Direction
}

// Spawn places a monster at least MinSeparationSq away from snakeHead.
func Spawn(rng grid.Rand, snakeHead grid.Point) (*Monster, error) {
	pos, err := grid.Sample(
		func() grid.Point {
			c := grid.Cell{
				Col: spawnMinCol + rng.Intn(spawnMaxCol-spawnMinCol+1),
				Row: spawnMinRow + rng.Intn(spawnMaxRow-spawnMinRow+1),
			}
			return c.Pixel().Add(grid.CellSize/2, grid.CellSize/2)
		},
		func(p grid.Point) bool { return grid.DistSq(p, snakeHead) >= MinSeparationSq },
		grid.MaxSpawnAttempts,
	)
	if err != nil {
		return nil, fmt.Errorf("monster: spawn: %w", err)
	}
	return &Monster{Position: pos, Heading: grid.Right}, nil
}

// PursuitHeading points along the dominant axis towards target. Ties go to
// the horizontal axis.
func PursuitHeading(from, target grid.Point) grid.Direction {
	dx, dy := target.X-from.X, target.Y-from.Y
	if math.Abs(dy) > math.Abs(dx) {
		if dy > 0 {
			return grid.Up
		}
		return grid.Down
	}
	if dx > 0 {
		return grid.Right
	}
	return grid.Left
}

// Pursue turns towards target and takes one step.
func (m *Monster) Pursue(target grid.Point) {
	m.Heading = PursuitHeading(m.Position, target)
	m.Position = m.Position.Move(m.Heading, StepSize)
}

// NextDelay draws the wait before the next pursuit tick, in [MinDelay, MaxDelay].
func NextDelay(rng grid.Rand) time.Duration {
	spread := int((MaxDelay - MinDelay) / time.Millisecond)
	return MinDelay + time.Duration(rng.Intn(spread+1))*time.Millisecond
}
