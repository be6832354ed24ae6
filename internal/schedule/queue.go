// Package schedule runs deferred callbacks on simulation time.
//
// It stands in for the delayed-call facility of a game engine: attack
// cooldowns, tint resets and delayed removals are queued with After and fire
// from Advance, on the same goroutine that drives the frame loop.
package schedule

import (
	"time"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// ID identifies a queued callback.
type ID uint64

type entry struct {
	id  ID
	due time.Duration
	seq uint64
	fn  func()
}

// Queue orders callbacks by due time, then by insertion order.
type Queue struct {
	now       time.Duration
	seq       uint64
	heap      *heap.Heap[*entry]
	pending   mapset.Set[ID]
	cancelled map[ID]bool
}

// New creates an empty queue at time zero.
func New() *Queue {
	return &Queue{
		heap: heap.New(func(a, b *entry) bool {
			if a.due != b.due {
				return a.due < b.due
			}
			return a.seq < b.seq
		}),
		pending:   mapset.New[ID](),
		cancelled: make(map[ID]bool),
	}
}

// Now returns the simulation time the queue has advanced to.
func (q *Queue) Now() time.Duration {
	return q.now
}

// After schedules fn to run once d has elapsed. A non-positive delay fires on
// the next Advance.
func (q *Queue) After(d time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	q.seq++
	e := &entry{id: ID(q.seq), due: q.now + d, seq: q.seq, fn: fn}
	q.heap.Push(e)
	q.pending.Put(e.id)
	return e.id
}

// Cancel prevents a pending callback from running. Unknown or already
// fired IDs are ignored.
func (q *Queue) Cancel(id ID) {
	if q.pending.Has(id) {
		q.cancelled[id] = true
	}
}

// Advance moves time forward by dt and runs every callback that became due.
// Callbacks scheduled from inside a callback run in the same Advance when
// they are already due. Returns the number of callbacks run.
func (q *Queue) Advance(dt time.Duration) int {
	if dt > 0 {
		q.now += dt
	}

	ran := 0
	for {
		next, ok := q.heap.Peek()
		if !ok || next.due > q.now {
			return ran
		}
		q.heap.Pop()
		q.pending.Remove(next.id)
		if q.cancelled[next.id] {
			delete(q.cancelled, next.id)
			continue
		}
		next.fn()
		ran++
	}
}

// Len returns the number of queued callbacks, including cancelled ones that
// have not been discarded yet.
func (q *Queue) Len() int {
	return q.heap.Size()
}

// Clear drops every pending callback.
func (q *Queue) Clear() {
	for q.heap.Size() > 0 {
		q.heap.Pop()
	}
	q.pending = mapset.New[ID]()
	q.cancelled = make(map[ID]bool)
}
