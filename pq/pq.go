package pq

import (
	"cmp"
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by Get and Peek when the queue holds no items.
var ErrEmptyQueue = errors.New("pq: queue is empty")

// entry is one heap slot: the payload, its priority, and its insertion tag.
type entry[T any, P cmp.Ordered] struct {
	item     T
	priority P
	seq      uint64
}

// entries implements heap.Interface ordered by (priority, seq) ascending.
type entries[T any, P cmp.Ordered] []entry[T, P]

// Len returns the number of entries in the heap.
func (h entries[T, P]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entries[T, P]) Less(i, j int) bool {
	if c := cmp.Compare(h[i].priority, h[j].priority); c != 0 {
		return c < 0
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entries[T, P]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T, P].
func (h *entries[T, P]) Push(x any) { *h = append(*h, x.(entry[T, P])) }

// Pop is called by heap.Pop and removes the last slot.
func (h *entries[T, P]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	var zero entry[T, P]
	old[n-1] = zero // drop the reference so T can be collected
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of T keyed by P.
// The zero value is ready to use.
type Queue[T any, P cmp.Ordered] struct {
	h   entries[T, P]
	seq uint64
}

// New returns an empty queue.
func New[T any, P cmp.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{}
}

// NewWithCapacity returns an empty queue whose backing slice can hold n entries
// before growing.
func NewWithCapacity[T any, P cmp.Ordered](n int) *Queue[T, P] {
	if n < 0 {
		n = 0
	}

	return &Queue[T, P]{h: make(entries[T, P], 0, n)}
}

// Len returns the number of queued entries, duplicates included.
func (q *Queue[T, P]) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T, P]) IsEmpty() bool { return q.h.Len() == 0 }

// Put inserts item with the given priority. O(log n).
func (q *Queue[T, P]) Put(item T, priority P) {
	heap.Push(&q.h, entry[T, P]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Get removes and returns the item with the lowest priority. O(log n).
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T, P]) Get() (T, error) {
	item, _, err := q.GetWithPriority()

	return item, err
}

// GetWithPriority is Get that also reports the priority the item was queued with.
func (q *Queue[T, P]) GetWithPriority() (T, P, error) {
	if q.h.Len() == 0 {
		var (
			zeroT T
			zeroP P
		)
		return zeroT, zeroP, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[T, P])

	return e.item, e.priority, nil
}

// Peek returns the minimum item and its priority without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T, P]) Peek() (T, P, error) {
	if q.h.Len() == 0 {
		var (
			zeroT T
			zeroP P
		)
		return zeroT, zeroP, ErrEmptyQueue
	}
	e := q.h[0]

	return e.item, e.priority, nil
}

// Reset drops every entry but keeps the allocated storage.
func (q *Queue[T, P]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.seq = 0
}
