// Package window provides a fixed-capacity sliding window that tracks how many
// distinct symbols it currently holds.
package window

// Distinct is a ring buffer of the last Cap() symbols pushed, paired with a
// frequency table over exactly those symbols. A symbol is a key in the table
// if and only if it occurs in the ring at least once.
type Distinct[T comparable] struct {
	ring   []T
	counts map[T]int
	pushed int
}

// New creates a window holding at most capacity symbols.
func New[T comparable](capacity int) (*Distinct[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Distinct[T]{
		ring:   make([]T, capacity),
		counts: make(map[T]int, capacity),
	}, nil
}

// Push adds sym to the window. Once the window is full the oldest symbol is
// evicted and returned with ok set.
func (w *Distinct[T]) Push(sym T) (evicted T, ok bool) {
	slot := w.pushed % len(w.ring)
	if w.pushed >= len(w.ring) {
		evicted, ok = w.ring[slot], true
	}

	w.ring[slot] = sym
	w.counts[sym]++

	if ok {
		w.counts[evicted]--
		if w.counts[evicted] == 0 {
			delete(w.counts, evicted)
		}
	}

	w.pushed++
	return evicted, ok
}

// Distinct returns the number of different symbols in the window.
func (w *Distinct[T]) Distinct() int {
	return len(w.counts)
}

// Count returns how many times sym occurs in the window.
func (w *Distinct[T]) Count(sym T) int {
	return w.counts[sym]
}

// Len returns the number of symbols currently held.
func (w *Distinct[T]) Len() int {
	return min(w.pushed, len(w.ring))
}

// Cap returns the window capacity.
func (w *Distinct[T]) Cap() int {
	return len(w.ring)
}

// Pushed returns the total number of symbols pushed since creation or Reset.
func (w *Distinct[T]) Pushed() int {
	return w.pushed
}

// Full reports whether the window holds Cap() symbols.
func (w *Distinct[T]) Full() bool {
	return w.pushed >= len(w.ring)
}

// AllDistinct reports whether the window is full and no symbol repeats.
func (w *Distinct[T]) AllDistinct() bool {
	return w.Full() && len(w.counts) == len(w.ring)
}

// Contents returns a copy of the window, oldest symbol first.
func (w *Distinct[T]) Contents() []T {
	n := w.Len()
	out := make([]T, n)
	start := 0
	if w.Full() {
		start = w.pushed % len(w.ring)
	}
	for i := 0; i < n; i++ {
		out[i] = w.ring[(start+i)%len(w.ring)]
	}
	return out
}

// Reset empties the window without reallocating the ring.
func (w *Distinct[T]) Reset() {
	var zero T
	for i := range w.ring {
		w.ring[i] = zero
	}
	clear(w.counts)
	w.pushed = 0
}
