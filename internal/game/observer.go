package game

import (
	"go-glutton/internal/food"
	"go-glutton/internal/grid"
	"go-glutton/internal/state"
)

// Observer receives a notification after every visible state change.
// All calls happen on the goroutine that drives the Game.
type Observer interface {
	SnakeMoved(head grid.Point, heading grid.Direction)
	TrailStamped(at grid.Point)
	TrailCleared(at grid.Point)
	MonsterMoved(at grid.Point, heading grid.Direction)
	FoodChanged(item food.Item, at grid.Point)
	StatusChanged(status state.Status)
	Banner(text string)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) SnakeMoved(grid.Point, grid.Direction)   {}
func (NopObserver) TrailStamped(grid.Point)                 {}
func (NopObserver) TrailCleared(grid.Point)                 {}
func (NopObserver) MonsterMoved(grid.Point, grid.Direction) {}
func (NopObserver) FoodChanged(food.Item, grid.Point)       {}
func (NopObserver) StatusChanged(state.Status)              {}
func (NopObserver) Banner(string)                           {}
