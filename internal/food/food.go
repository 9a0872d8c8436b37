package food

import (
	"fmt"

	"go-glutton/internal/grid"
)

// Count is the number of numbered items placed at game start.
const Count = 5

// Item is one numbered food. Value drops to 0 once eaten.
type Item struct {
	ID      int
	Cell    grid.Cell
	Value   int
	Visible bool
}

// Consumed reports whether the item has been eaten.
func (i Item) Consumed() bool {
	return i.Value == 0
}

// Edible reports whether the snake can eat the item right now.
func (i Item) Edible() bool {
	return i.Visible && !i.Consumed()
}

// Manager owns the food items for one game.
type Manager struct {
	Items []Item
}

// SpawnInitial places Count items on distinct cells away from the snake's
// start cell, valued 1..Count, all visible.
func SpawnInitial(rng grid.Rand, snakeStart grid.Cell) (*Manager, error) {
	m := &Manager{Items: make([]Item, 0, Count)}
	for value := 1; value <= Count; value++ {
		cell, err := grid.Sample(
			func() grid.Cell { return grid.RandomCell(rng) },
			func(c grid.Cell) bool { return c != snakeStart && !m.Occupied(c) },
			grid.MaxSpawnAttempts,
		)
		if err != nil {
			return nil, fmt.Errorf("food: spawn item %d: %w", value, err)
		}
		m.Items = append(m.Items, Item{
			ID:      value - 1,
			Cell:    cell,
			Value:   value,
			Visible: true,
		})
	}
	return m, nil
}

// Occupied reports whether any item, eaten or not, sits on the cell.
func (m *Manager) Occupied(c grid.Cell) bool {
	for _, item := range m.Items {
		if item.Cell == c {
			return true
		}
	}
	return false
}

// Item returns the item with the given id.
func (m *Manager) Item(id int) (Item, bool) {
	if id < 0 || id >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[id], true
}

// Consume marks the item eaten and returns the value it was worth.
// Eating an invisible or already eaten item yields 0 and changes nothing.
func (m *Manager) Consume(id int) int {
	item, ok := m.Item(id)
	if !ok || !item.Edible() {
		return 0
	}
	m.Items[id].Value = 0
	return item.Value
}

// AllConsumed reports whether every item has been eaten.
func (m *Manager) AllConsumed() bool {
	for _, item := range m.Items {
		if !item.Consumed() {
			return false
		}
	}
	return true
}

// Remaining returns the items still on the board.
func (m *Manager) Remaining() []Item {
	var left []Item
	for _, item := range m.Items {
		if !item.Consumed() {
			left = append(left, item)
		}
	}
	return left
}

// Toggle flips the visibility of one uneaten item picked uniformly at random.
// It returns false when nothing is left to toggle.
func (m *Manager) Toggle(rng grid.Rand) (Item, bool) {
	left := m.Remaining()
	if len(left) == 0 {
		return Item{}, false
	}
	id := left[rng.Intn(len(left))].ID
	m.Items[id].Visible = !m.Items[id].Visible
	return m.Items[id], true
}
