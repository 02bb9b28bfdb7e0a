package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// entry is a frontier item: a cell, its cost so far and its ordering key.
// The path is not stored here; it lives in the arena.
type entry struct {
	pos      grid.Position
	cost     int    // g: moves from start
	priority int    // ordering key (g, h or g+h)
	seq      uint64 // insertion order, the final tie-break
}

// entryPQ is a min-heap of entries ordered by priority, then (optionally)
// larger cost first, then insertion order. Stale entries are left in place
// and skipped by the caller when popped ("lazy decrease-key").
type entryPQ struct {
	items      []entry
	preferDeep bool
}

// Len returns the number of items in the heap.
func (pq *entryPQ) Len() int { return len(pq.items) }

// Less orders by priority; equal priorities fall back to cost when preferDeep
// is set and finally to insertion order, which keeps every run deterministic.
func (pq *entryPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if pq.preferDeep && a.cost != b.cost {
		return a.cost > b.cost
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq *entryPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (pq *entryPQ) Push(x any) { pq.items = append(pq.items, x.(entry)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// frontier wraps entryPQ with a sequence counter.
type frontier struct {
	pq  entryPQ
	seq uint64
}

func newFrontier(preferDeep bool) *frontier {
	return &frontier{pq: entryPQ{preferDeep: preferDeep}}
}

func (f *frontier) push(pos grid.Position, cost, priority int) {
	heap.Push(&f.pq, entry{pos: pos, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() entry {
	return heap.Pop(&f.pq).(entry)
}

func (f *frontier) empty() bool {
	return f.pq.Len() == 0
}
