package grid

import (
	"errors"
	"fmt"
	"math"
)

// Board geometry. Cells are 1-based on both axes; rows grow upwards.
const (
	Size     = 25
	CellSize = 20
	OffsetX  = -264
	OffsetY  = -314
)

// MaxSpawnAttempts bounds every reject-and-resample spawn search.
const MaxSpawnAttempts = 10000

var ErrSampleExhausted = errors.New("grid: no valid sample")

// Rand is the subset of a random source the simulation needs.
type Rand interface {
	Intn(n int) int
}

type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

var directionNames = map[Direction]string{
	Right: "Right",
	Up:    "Up",
	Left:  "Left",
	Down:  "Down",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Angle returns the heading in degrees, counter-clockwise from Right.
func (d Direction) Angle() int {
	return int(d) * 90
}

// Delta returns the unit step along the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	}
	return 0, 0
}

// Horizontal reports whether the direction moves along columns.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

// Cell is a discrete board coordinate.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.Col >= 1 && c.Col <= Size && c.Row >= 1 && c.Row <= Size
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Pixel converts the cell to its anchor in render space.
func (c Cell) Pixel() Point {
	return Point{
		X: float64(c.Col*CellSize + OffsetX),
		Y: float64(c.Row*CellSize + OffsetY),
	}
}

// Point is a continuous render-space coordinate.
type Point struct {
	X, Y float64
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Move returns p advanced dist units along d.
func (p Point) Move(d Direction, dist float64) Point {
	dc, dr := d.Delta()
	return p.Add(float64(dc)*dist, float64(dr)*dist)
}

// CellAt maps a point back to the cell whose anchor square contains it.
// Points half a cell off the lattice resolve to the lower-left cell.
func CellAt(p Point) Cell {
	return Cell{
		Col: int(math.Floor((p.X - OffsetX) / CellSize)),
		Row: int(math.Floor((p.Y - OffsetY) / CellSize)),
	}
}

// DistSq is the squared euclidean distance between two points.
func DistSq(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// RandomCell draws a cell uniformly from the whole board.
func RandomCell(rng Rand) Cell {
	return Cell{Col: rng.Intn(Size) + 1, Row: rng.Intn(Size) + 1}
}

// Sample draws candidates until one satisfies valid, giving up after
// maxAttempts draws.
func Sample[T any](draw func() T, valid func(T) bool, maxAttempts int) (T, error) {
	var zero T
	for i := 0; i < maxAttempts; i++ {
		candidate := draw()
		if valid(candidate) {
			return candidate, nil
		}
	}
	return zero, fmt.Errorf("%w after %d attempts", ErrSampleExhausted, maxAttempts)
}
