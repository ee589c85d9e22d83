package pq_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/pathfind/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueue_Empty verifies that Get and Peek fail cleanly on an empty queue.
func TestQueue_Empty(t *testing.T) {
	q := pq.New[string, float64]()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())

	item, err := q.Get()
	assert.True(t, errors.Is(err, pq.ErrEmptyQueue), "Get: got %v", err)
	assert.Equal(t, "", item)

	_, _, err = q.Peek()
	assert.ErrorIs(t, err, pq.ErrEmptyQueue)

	var zero pq.Queue[int, int]
	_, err = zero.Get()
	assert.ErrorIs(t, err, pq.ErrEmptyQueue, "zero value must be usable")
}

// TestQueue_PushPopOrder mirrors the classic heap sanity check.
func TestQueue_PushPopOrder(t *testing.T) {
	q := pq.New[int, float64]()
	for i, p := range []float64{3.0, 0.0, 3.0, 5.0, 2.0} {
		q.Put(i, p)
	}
	require.Equal(t, 5, q.Len())

	var got []float64
	for !q.IsEmpty() {
		_, p, err := q.GetWithPriority()
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, []float64{0.0, 2.0, 3.0, 3.0, 5.0}, got)
}

// TestQueue_TiesAreFIFO pins the documented tie-break: insertion order.
func TestQueue_TiesAreFIFO(t *testing.T) {
	q := pq.New[string, int]()
	q.Put("c", 1)
	q.Put("a", 0)
	q.Put("x", 1)
	q.Put("b", 0)
	q.Put("y", 1)

	var got []string
	for !q.IsEmpty() {
		s, err := q.Get()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b", "c", "x", "y"}, got)
}

// TestQueue_Peek leaves the queue unchanged.
func TestQueue_Peek(t *testing.T) {
	q := pq.New[string, int]()
	q.Put("later", 9)
	q.Put("first", 1)

	item, p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "first", item)
	assert.Equal(t, 1, p)
	assert.Equal(t, 2, q.Len())

	item, err = q.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", item)
}

// TestQueue_Duplicates keeps every copy of a re-queued item.
func TestQueue_Duplicates(t *testing.T) {
	q := pq.New[string, int]()
	q.Put("n", 7)
	q.Put("n", 3)
	q.Put("n", 5)

	var prios []int
	for !q.IsEmpty() {
		_, p, err := q.GetWithPriority()
		require.NoError(t, err)
		prios = append(prios, p)
	}
	assert.Equal(t, []int{3, 5, 7}, prios)
}

// TestQueue_Reset empties the queue and restarts the tie sequence.
func TestQueue_Reset(t *testing.T) {
	q := pq.NewWithCapacity[int, int](4)
	q.Put(1, 1)
	q.Put(2, 1)
	q.Reset()
	assert.True(t, q.IsEmpty())

	q.Put(3, 1)
	q.Put(4, 1)
	first, err := q.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, first)
}

// TestQueue_RandomAgainstSort drains random priorities and compares with a stable sort.
func TestQueue_RandomAgainstSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	type pair struct{ id, prio int }

	q := pq.New[int, int]()
	var all []pair
	for i := 0; i < 500; i++ {
		p := rnd.Intn(40)
		q.Put(i, p)
		all = append(all, pair{i, p})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].prio < all[j].prio })

	for _, want := range all {
		got, err := q.Get()
		require.NoError(t, err)
		require.Equal(t, want.id, got)
	}
	assert.True(t, q.IsEmpty())
}
