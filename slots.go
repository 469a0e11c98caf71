package beeper

import "iter"

// slot is either empty or holds a value.
type slot[T any] struct {
	occupied bool
	value    T
}

// slotTable is a growable array of slots. Removal leaves an empty slot behind
// instead of compacting, so indexes stay stable and the table never shrinks.
// When no empty slot remains the capacity doubles, up to limit.
type slotTable[T any] struct {
	slots []slot[T]
	limit int
}

func newSlotTable[T any](size, limit int) (*slotTable[T], error) {
	if size <= 0 {
		size = 1
	}
	if limit > 0 && size > limit {
		return nil, ErrOutOfMemory
	}
	return &slotTable[T]{slots: make([]slot[T], size), limit: limit}, nil
}

// capacity is the number of slots, empty or not.
func (t *slotTable[T]) capacity() int {
	return len(t.slots)
}

// count is the number of occupied slots.
func (t *slotTable[T]) count() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].occupied {
			n++
		}
	}
	return n
}

// index returns the first occupied slot whose value satisfies match, or -1.
func (t *slotTable[T]) index(match func(T) bool) int {
	for i := range t.slots {
		if t.slots[i].occupied && match(t.slots[i].value) {
			return i
		}
	}
	return -1
}

// acquire returns the first empty slot, growing the table when there is none.
// A failed growth leaves the table untouched.
func (t *slotTable[T]) acquire() (int, error) {
	for i := range t.slots {
		if !t.slots[i].occupied {
			return i, nil
		}
	}
	first := len(t.slots)
	if err := t.grow(); err != nil {
		return -1, err
	}
	return first, nil
}

func (t *slotTable[T]) grow() error {
	size := len(t.slots) * 2
	if size == 0 {
		size = 1
	}
	if t.limit > 0 && size > t.limit {
		return ErrOutOfMemory
	}
	grown := make([]slot[T], size)
	copy(grown, t.slots)
	t.slots = grown
	return nil
}

func (t *slotTable[T]) put(i int, value T) {
	t.slots[i] = slot[T]{occupied: true, value: value}
}

// at returns a pointer to the value of an occupied slot for in-place updates.
func (t *slotTable[T]) at(i int) *T {
	return &t.slots[i].value
}

func (t *slotTable[T]) clear(i int) {
	t.slots[i] = slot[T]{}
}

// occupied yields occupied slots in index order.
func (t *slotTable[T]) occupied() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range t.slots {
			if !t.slots[i].occupied {
				continue
			}
			if !yield(i, t.slots[i].value) {
				return
			}
		}
	}
}

func (t *slotTable[T]) values() []T {
	out := make([]T, 0, t.count())
	for _, v := range t.occupied() {
		out = append(out, v)
	}
	return out
}

// release drops every slot.
func (t *slotTable[T]) release() {
	t.slots = nil
}
