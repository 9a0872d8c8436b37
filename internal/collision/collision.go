// Package collision holds the pure predicates the simulation consults before
// committing a move: walls, the snake's own trail, monster proximity and food.
package collision

import (
	"go-glutton/internal/food"
	"go-glutton/internal/grid"
)

// ProximitySq is the squared pixel distance under which two bodies touch.
const ProximitySq = 250.0

// HitsWall reports whether stepping from head along d leaves the board.
// Only the boundary in the direction of travel is checked.
func HitsWall(head grid.Cell, d grid.Direction) bool {
	switch d {
	case grid.Right:
		return head.Col >= grid.Size
	case grid.Left:
		return head.Col <= 1
	case grid.Up:
		return head.Row >= grid.Size
	case grid.Down:
		return head.Row <= 1
	}
	return true
}

// HitsSelf reports whether target lies on the trail. When evicting is set the
// oldest trail cell is vacated by this very move and does not count.
func HitsSelf(target grid.Cell, body []grid.Cell, evicting bool) bool {
	active := body
	if evicting && len(active) > 0 {
		active = active[1:]
	}
	for _, c := range active {
		if c == target {
			return true
		}
	}
	return false
}

// Touches reports whether a and b are within the proximity threshold.
func Touches(a, b grid.Point) bool {
	return grid.DistSq(a, b) < ProximitySq
}

// TouchesAny reports whether p touches the stamp of any cell.
func TouchesAny(p grid.Point, cells []grid.Cell) bool {
	for _, c := range cells {
		if Touches(p, c.Pixel()) {
			return true
		}
	}
	return false
}

// FoodAt returns the ids of the edible items on the cell.
func FoodAt(c grid.Cell, items []food.Item) []int {
	var ids []int
	for _, item := range items {
		if item.Cell == c && item.Edible() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
