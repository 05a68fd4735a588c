package snake

import "math/rand"

// Board is the fixed-size square playing field.
type Board struct {
	size int
	rng  *rand.Rand
}

// NewBoard creates a size×size board drawing random cells from rng.
func NewBoard(size int, rng *rand.Rand) *Board {
	return &Board{size: size, rng: rng}
}

// Size returns the number of cells per side.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// RandomCell returns a uniformly random cell on the board.
func (b *Board) RandomCell() Cell {
	return Cell{X: b.rng.Intn(b.size), Y: b.rng.Intn(b.size)}
}
