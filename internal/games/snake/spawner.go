package snake

import (
	"fmt"
	"math/rand"
)

// Spawner places food and power-ups on cells nothing else occupies.
type Spawner struct {
	board       *Board
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner for board. rng drives the power-up roll.
func NewSpawner(board *Board, rng *rand.Rand) *Spawner {
	cells := board.Size() * board.Size()
	return &Spawner{
		board:       board,
		rng:         rng,
		maxAttempts: cells * 4,
	}
}

// SpawnFood returns a random cell not present in occupied.
// Rejection sampling runs for a bounded number of draws, then the board is
// scanned for whatever free cells remain. Panics with ErrBoardFull if none do.
func (s *Spawner) SpawnFood(occupied map[Cell]struct{}) Cell {
	for range s.maxAttempts {
		c := s.board.RandomCell()
		if _, taken := occupied[c]; !taken {
			return c
		}
	}

	// Nearly full board: pick among the remaining free cells
	size := s.board.Size()
	free := make([]Cell, 0, max(size*size-len(occupied), 0))
	for y := range size {
		for x := range size {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		panic(fmt.Errorf("%w: %d occupied cells on a %dx%d board", ErrBoardFull, len(occupied), size, size))
	}
	return free[s.rng.Intn(len(free))]
}

// MaybeSpawnPowerUp rolls once against chance and, on success, returns a
// free cell chosen the same way as SpawnFood. A full board yields no power-up.
func (s *Spawner) MaybeSpawnPowerUp(occupied map[Cell]struct{}, chance float64) (Cell, bool) {
	if s.rng.Float64() >= chance {
		return Cell{}, false
	}
	size := s.board.Size()
	if len(occupied) >= size*size {
		return Cell{}, false
	}
	return s.SpawnFood(occupied), true
}
