// Package snake implements the snake simulation: a deterministic, tick-driven
// state machine over a square board. It has no terminal or storage
// dependencies; the platform layer drives it and renders its snapshots.
package snake

import "errors"

// ErrBoardFull is the invariant violation raised when no free cell is left
// for a spawn. Growth requires eating, so this is unreachable in a correct game.
var ErrBoardFull = errors.New("snake: no free cell on board")

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the unit step for d. Y grows downwards.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	case DirRight:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Collision describes what the head ran into on an advance.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Status is the engine's state-machine state.
type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusOver    Status = "game_over"
)
