package state

import "go-glutton/internal/grid"

// Key is the last motion input the status line reports.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
)

var keyNames = []string{"None", "Up", "Down", "Left", "Right", "Pause"}

func (k Key) String() string {
	if int(k) < 0 || int(k) >= len(keyNames) {
		return "None"
	}
	return keyNames[k]
}

// KeyFor maps a heading to its input key.
func KeyFor(d grid.Direction) Key {
	switch d {
	case grid.Up:
		return KeyUp
	case grid.Down:
		return KeyDown
	case grid.Left:
		return KeyLeft
	case grid.Right:
		return KeyRight
	}
	return KeyNone
}

// Direction returns the heading a key steers to, if any.
func (k Key) Direction() (grid.Direction, bool) {
	switch k {
	case KeyUp:
		return grid.Up, true
	case KeyDown:
		return grid.Down, true
	case KeyLeft:
		return grid.Left, true
	case KeyRight:
		return grid.Right, true
	}
	return 0, false
}
