package astar

import (
	"container/heap"
	"fmt"
)

// entry is one physical queue record. A cell may own several entries at a
// time; only the one whose gen matches frontier.gen[cell] is live.
type entry struct {
	cell int    // row-major cell index
	g    int    // cost so far
	f    int    // priority: g + heuristic
	seq  uint64 // insertion order, breaks ties FIFO
	gen  uint32 // generation stamp at insertion
}

// entryHeap is a min-heap of entries ordered by (f, seq). Entries are stored
// by value in one slice that is reused across searches.
type entryHeap []entry

// Len returns the number of entries in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

// Pop removes the last entry; called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// frontier is the open set. It emulates decrease-key by lazy invalidation:
// improve pushes a fresh entry and bumps the cell's generation, so older
// entries for that cell are discarded when they surface in popBest.
//
// best and open are the authoritative record of which cells are enqueued and
// at what priority, independent of how many physical entries exist.
type frontier struct {
	pq    entryHeap
	best  []int    // best known priority per cell; 0 when not enqueued
	open  []bool   // cell has a live entry
	gen   []uint32 // current generation per cell
	seq   uint64
	stale int // entries discarded by popBest during this search
}

// reset prepares the frontier for a grid of n cells, reusing buffers.
func (fr *frontier) reset(n int) {
	fr.pq = fr.pq[:0]
	fr.best = resize(fr.best, n)
	fr.open = resize(fr.open, n)
	fr.gen = resize(fr.gen, n)
	fr.seq = 0
	fr.stale = 0
}

// isOpen reports whether cell currently has a live entry.
func (fr *frontier) isOpen(cell int) bool {
	return fr.open[cell]
}

// bestPriority returns the best known priority of cell, or 0 if not enqueued.
func (fr *frontier) bestPriority(cell int) int {
	return fr.best[cell]
}

// push inserts a candidate for a cell that has no live entry.
func (fr *frontier) push(cell, g, f int) error {
	if fr.open[cell] {
		return fmt.Errorf("%w: push on open cell %d", ErrInternalInconsistency, cell)
	}
	fr.open[cell] = true
	fr.enqueue(cell, g, f)

	return nil
}

// improve lowers the priority of an open cell. Its previous entry stays in
// the heap and is dropped later as stale.
func (fr *frontier) improve(cell, g, f int) error {
	if !fr.open[cell] {
		return fmt.Errorf("%w: improve on cell %d that is not open", ErrInternalInconsistency, cell)
	}
	if f >= fr.best[cell] {
		return fmt.Errorf("%w: improve on cell %d from %d to %d", ErrInternalInconsistency, cell, fr.best[cell], f)
	}
	fr.enqueue(cell, g, f)

	return nil
}

func (fr *frontier) enqueue(cell, g, f int) {
	fr.best[cell] = f
	fr.gen[cell]++
	fr.seq++
	heap.Push(&fr.pq, entry{cell: cell, g: g, f: f, seq: fr.seq, gen: fr.gen[cell]})
}

// popBest removes and returns the live entry with the lowest (f, seq).
// ok is false when no live entry remains. The returned cell is no longer open.
func (fr *frontier) popBest() (e entry, ok bool) {
	for fr.pq.Len() > 0 {
		e = heap.Pop(&fr.pq).(entry)
		if e.gen != fr.gen[e.cell] || !fr.open[e.cell] {
			fr.stale++
			continue
		}
		fr.open[e.cell] = false
		fr.best[e.cell] = 0

		return e, true
	}

	return entry{}, false
}

// len returns the number of physical entries, live or stale.
func (fr *frontier) len() int {
	return fr.pq.Len()
}

// resize returns s with length n and every element zeroed, reusing its
// backing array when large enough.
func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)

	return s
}
