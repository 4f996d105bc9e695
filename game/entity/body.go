package entity

import "gosnake/game/types"

// body is a deque of cell coordinates backed by a ring buffer: front
// insertion and back removal stay O(1) no matter how long the snake
// gets. Slot 0 is the head.
type body struct {
	cells []types.Point
	head  int
	size  int
}

func newBody(capacity int) *body {
	if capacity < 2 {
		capacity = 2
	}
	return &body{cells: make([]types.Point, capacity)}
}

func (b *body) len() int { return b.size }

func (b *body) at(i int) types.Point {
	return b.cells[(b.head+i)%len(b.cells)]
}

func (b *body) pushFront(p types.Point) {
	if b.size == len(b.cells) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = p
	b.size++
}

func (b *body) popBack() {
	if b.size > 0 {
		b.size--
	}
}

// grow doubles the backing array, keeping pushFront amortized O(1).
func (b *body) grow() {
	next := make([]types.Point, len(b.cells)*2)
	for i := 0; i < b.size; i++ {
		next[i] = b.at(i)
	}
	b.cells = next
	b.head = 0
}

// snapshot copies the cells head-first into a fresh slice.
func (b *body) snapshot() []types.Point {
	out := make([]types.Point, b.size)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
