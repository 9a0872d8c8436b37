package main

import (
	"fmt"
	"strconv"
	"strings"

	"go-glutton/internal/food"
	"go-glutton/internal/grid"
	"go-glutton/internal/state"

	"github.com/charmbracelet/lipgloss"
)

var (
	headStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	trailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	monsterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	foodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var headGlyphs = map[grid.Direction]string{
	grid.Right: "▶",
	grid.Up:    "▲",
	grid.Left:  "◀",
	grid.Down:  "▼",
}

type foodMark struct {
	cell  grid.Cell
	label string
}

// board mirrors what the game has told it so far and draws it as text.
// Trail stamps are counted per cell; a cell stays drawn until every stamp
// on it has been cleared.
type board struct {
	head    grid.Cell
	heading grid.Direction
	trail   map[grid.Cell]int
	monster grid.Cell
	food    map[int]foodMark
	status  state.Status
	banner  string
}

func newBoard() *board {
	return &board{
		trail: make(map[grid.Cell]int),
		food:  make(map[int]foodMark),
	}
}

func (b *board) SnakeMoved(head grid.Point, heading grid.Direction) {
	b.head = grid.CellAt(head)
	b.heading = heading
}

func (b *board) TrailStamped(at grid.Point) {
	b.trail[grid.CellAt(at)]++
}

func (b *board) TrailCleared(at grid.Point) {
	c := grid.CellAt(at)
	if b.trail[c] <= 1 {
		delete(b.trail, c)
		return
	}
	b.trail[c]--
}

func (b *board) MonsterMoved(at grid.Point, _ grid.Direction) {
	b.monster = grid.CellAt(at)
}

func (b *board) FoodChanged(item food.Item, at grid.Point) {
	if !item.Edible() {
		delete(b.food, item.ID)
		return
	}
	b.food[item.ID] = foodMark{cell: grid.CellAt(at), label: strconv.Itoa(item.Value)}
}

func (b *board) StatusChanged(status state.Status) {
	b.status = status
}

func (b *board) Banner(text string) {
	b.banner = text
}

// StatusLine is the text above the board.
func (b *board) StatusLine() string {
	return fmt.Sprintf("Contact: %d      Time: %d      Motion: %s",
		b.status.ContactCount, b.status.ElapsedSeconds, b.status.Key)
}

func (b *board) cellGlyph(c grid.Cell, labels map[grid.Cell]string) string {
	switch {
	case c == b.monster:
		return monsterStyle.Render("M ")
	case c == b.head:
		return headStyle.Render(headGlyphs[b.heading] + " ")
	}
	if label, ok := labels[c]; ok {
		return foodStyle.Render(label + " ")
	}
	if b.trail[c] > 0 {
		return trailStyle.Render("■ ")
	}
	return emptyStyle.Render("· ")
}

// Render draws the play area with row Size at the top.
func (b *board) Render() string {
	labels := make(map[grid.Cell]string, len(b.food))
	for _, m := range b.food {
		labels[m.cell] = m.label
	}

	var sb strings.Builder
	for row := grid.Size; row >= 1; row-- {
		for col := 1; col <= grid.Size; col++ {
			sb.WriteString(b.cellGlyph(grid.Cell{Col: col, Row: row}, labels))
		}
		if row > 1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
