// Package pq provides a generic min-priority queue built on container/heap.
//
// What
//
//   - Queue[T, P]: pairs an item of any type with an ordered priority.
//   - Put inserts in O(log n); Get removes and returns the minimum in O(log n).
//   - Peek reports the minimum without removing it.
//
// Ties
//
//	Equal priorities are served in insertion order: the heap orders entries
//	lexicographically on (priority, insertion sequence). The sequence counter
//	is per queue and never reset by Get, so the order is fully deterministic.
//
// Duplicates
//
//	The queue does not deduplicate. Searches that use "lazy decrease-key"
//	push the same item again with a better priority and skip the stale entry
//	when it is popped.
//
// Errors
//
//   - ErrEmptyQueue  Get or Peek on an empty queue.
//
// A Queue is not safe for concurrent use; each search owns its own queue.
package pq
