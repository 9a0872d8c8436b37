package collision

import (
	"testing"

	"go-glutton/internal/food"
	"go-glutton/internal/grid"
)

func TestHitsWall(t *testing.T) {
	tests := []struct {
		name   string
		head   grid.Cell
		dir    grid.Direction
		expect bool
	}{
		{"right edge heading right", grid.Cell{Col: 25, Row: 10}, grid.Right, true},
		{"left edge heading left", grid.Cell{Col: 1, Row: 10}, grid.Left, true},
		{"top edge heading up", grid.Cell{Col: 10, Row: 25}, grid.Up, true},
		{"bottom edge heading down", grid.Cell{Col: 10, Row: 1}, grid.Down, true},
		{"right edge heading left", grid.Cell{Col: 25, Row: 10}, grid.Left, false},
		{"left edge heading up", grid.Cell{Col: 1, Row: 10}, grid.Up, false},
		{"corner heading away", grid.Cell{Col: 1, Row: 1}, grid.Right, false},
		{"one before the edge", grid.Cell{Col: 24, Row: 24}, grid.Right, false},
	}

	for _, tt := range tests {
		if got := HitsWall(tt.head, tt.dir); got != tt.expect {
			t.Errorf("%s: HitsWall = %v, expected %v", tt.name, got, tt.expect)
		}
	}
}

func TestHitsSelf_TailIsVacated(t *testing.T) {
	// A 2x2 loop: the head at (5,6) wants to move down onto the tail (5,5).
	body := []grid.Cell{{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 6}}
	target := grid.Cell{Col: 5, Row: 5}

	if HitsSelf(target, body, true) {
		t.Error("Moving onto the cell being evicted should be legal")
	}
	if !HitsSelf(target, body, false) {
		t.Error("Moving onto the tail while still growing should collide")
	}
	if !HitsSelf(grid.Cell{Col: 6, Row: 5}, body, true) {
		t.Error("Moving onto a non-tail segment should collide")
	}
	if HitsSelf(grid.Cell{Col: 1, Row: 1}, nil, true) {
		t.Error("Empty trail never collides")
	}
}

func TestTouches(t *testing.T) {
	origin := grid.Point{}
	tests := []struct {
		p      grid.Point
		expect bool
	}{
		{grid.Point{X: 10, Y: 10}, true},   // 200
		{grid.Point{X: 15, Y: 5}, false},   // 250 is not below the threshold
		{grid.Point{X: 10, Y: 30}, false},  // 1000
		{grid.Point{X: -10, Y: -10}, true}, // 200
	}

	for _, tt := range tests {
		if got := Touches(origin, tt.p); got != tt.expect {
			t.Errorf("Touches(%v) = %v, expected %v", tt.p, got, tt.expect)
		}
	}
}

func TestTouchesAny(t *testing.T) {
	cells := []grid.Cell{{Col: 3, Row: 3}, {Col: 8, Row: 8}}
	near := grid.Cell{Col: 8, Row: 8}.Pixel().Add(10, -10)
	far := grid.Cell{Col: 20, Row: 20}.Pixel().Add(10, 10)

	if !TouchesAny(near, cells) {
		t.Error("Expected contact with the (8,8) stamp")
	}
	if TouchesAny(far, cells) {
		t.Error("Expected no contact")
	}
}

func TestFoodAt(t *testing.T) {
	cell := grid.Cell{Col: 4, Row: 4}
	items := []food.Item{
		{ID: 0, Cell: cell, Value: 3, Visible: true},
		{ID: 1, Cell: cell, Value: 2, Visible: false},
		{ID: 2, Cell: cell, Value: 0, Visible: true},
		{ID: 3, Cell: grid.Cell{Col: 9, Row: 9}, Value: 1, Visible: true},
	}

	ids := FoodAt(cell, items)
	if len(ids) != 1 || ids[0] != 0 {
		t.Errorf("Expected only item 0 to be edible, got %v", ids)
	}
}
