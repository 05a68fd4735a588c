package snake

// Body is the ordered list of cells the snake occupies, head first.
// Advance only inspects; Grow and MoveWithoutGrowth are the only mutations.
type Body struct {
	cells []Cell
}

// NewBody creates a body from cells, head first. The slice is copied.
func NewBody(cells []Cell) *Body {
	return &Body{cells: append([]Cell(nil), cells...)}
}

// Head returns the first cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// Contains reports whether any segment occupies c.
func (b *Body) Contains(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Advance computes the next head position and what it would hit.
// Walls are checked first, then every current segment including the tail.
func (b *Body) Advance(dir Direction, board *Board) (Cell, Collision) {
	newHead := b.Head().Add(dir.Delta())
	if !board.InBounds(newHead) {
		return newHead, CollisionWall
	}
	if b.Contains(newHead) {
		return newHead, CollisionSelf
	}
	return newHead, CollisionNone
}

// Grow prepends head, lengthening the snake by one.
func (b *Body) Grow(head Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = head
}

// MoveWithoutGrowth prepends head and drops the tail.
func (b *Body) MoveWithoutGrowth(head Cell) {
	copy(b.cells[1:], b.cells[:len(b.cells)-1])
	b.cells[0] = head
}
