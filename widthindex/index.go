// Package widthindex implements a max-priority index over integer widths,
// addressed by stable handles.
//
// The index is an array-backed binary heap paired with a handle table that
// tracks every entry's current heap slot. Handles stay valid across other
// inserts, updates and removals until they are removed themselves.
//
// Handle policy: handle slots are recycled through a free list, but every
// handle carries the generation of its slot. Removing an entry bumps the
// generation, so a stale handle never aliases a newer entry; using it panics
// with ErrStaleHandle.
package widthindex

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrEmpty is the panic value cause for Max on an empty index.
	ErrEmpty = errors.New("widthindex: empty index")
	// ErrStaleHandle is the panic value cause for operations on a handle that
	// was never issued, was removed, or belongs to a released index.
	ErrStaleHandle = errors.New("widthindex: stale or unknown handle")
)

// Handle is an opaque reference to one index entry.
//
// The zero value is NoHandle and never refers to an entry.
type Handle uint64

// NoHandle marks "not indexed".
const NoHandle Handle = 0

func makeHandle(slot int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot+1))
}

func (h Handle) slot() int { return int(uint32(h)) - 1 }

func (h Handle) gen() uint32 { return uint32(h >> 32) }

type slotState struct {
	gen  uint32
	pos  int // heap position; -1 when free
	live bool
}

// Index is a handle-addressable max-heap of widths.
//
// Index is not safe for concurrent use.
type Index struct {
	h       entryHeap
	slots   []slotState
	free    []int
	version uint64
}

func New() *Index {
	x := &Index{}
	x.h.owner = x
	return x
}

// Reserve pre-allocates storage for n entries.
func (x *Index) Reserve(n int) {
	if n <= cap(x.h.entries) {
		return
	}
	entries := make([]entry, len(x.h.entries), n)
	copy(entries, x.h.entries)
	x.h.entries = entries

	if n > cap(x.slots) {
		slots := make([]slotState, len(x.slots), n)
		copy(slots, x.slots)
		x.slots = slots
	}
}

func (x *Index) Len() int { return len(x.h.entries) }

// Version increments on every effective mutation.
func (x *Index) Version() uint64 { return x.version }

// Insert adds v and returns its handle.
func (x *Index) Insert(v int) Handle {
	slot := x.allocSlot()
	st := &x.slots[slot]
	st.live = true
	heap.Push(&x.h, entry{value: v, slot: slot})
	x.version++
	return makeHandle(slot, st.gen)
}

// Update changes the value of h in place.
func (x *Index) Update(h Handle, v int) {
	pos := x.mustPos(h)
	if x.h.entries[pos].value == v {
		return
	}
	x.h.entries[pos].value = v
	heap.Fix(&x.h, pos)
	x.version++
}

// Remove deletes the entry for h and invalidates h.
func (x *Index) Remove(h Handle) {
	pos := x.mustPos(h)
	e := heap.Remove(&x.h, pos).(entry)
	st := &x.slots[e.slot]
	st.live = false
	st.pos = -1
	st.gen++
	x.free = append(x.free, e.slot)
	x.version++
}

// Max returns the largest value without removing it.
func (x *Index) Max() int {
	if len(x.h.entries) == 0 {
		panic(ErrEmpty)
	}
	return x.h.entries[0].value
}

// Value returns the value currently stored for h.
func (x *Index) Value(h Handle) int {
	return x.h.entries[x.mustPos(h)].value
}

// Valid reports whether h refers to a live entry.
func (x *Index) Valid(h Handle) bool {
	_, ok := x.pos(h)
	return ok
}

// Release drops all entries and invalidates every issued handle.
func (x *Index) Release() {
	x.free = x.free[:0]
	for i := len(x.slots) - 1; i >= 0; i-- {
		st := &x.slots[i]
		if st.live {
			st.gen++
			st.live = false
			st.pos = -1
		}
		x.free = append(x.free, i)
	}
	x.h.entries = x.h.entries[:0]
	x.version++
}

func (x *Index) allocSlot() int {
	if n := len(x.free); n > 0 {
		slot := x.free[n-1]
		x.free = x.free[:n-1]
		return slot
	}
	x.slots = append(x.slots, slotState{gen: 1, pos: -1})
	return len(x.slots) - 1
}

func (x *Index) pos(h Handle) (int, bool) {
	if h == NoHandle {
		return 0, false
	}
	slot := h.slot()
	if slot < 0 || slot >= len(x.slots) {
		return 0, false
	}
	st := x.slots[slot]
	if !st.live || st.gen != h.gen() {
		return 0, false
	}
	return st.pos, true
}

func (x *Index) mustPos(h Handle) int {
	pos, ok := x.pos(h)
	if !ok {
		panic(fmt.Errorf("%w: %#x", ErrStaleHandle, uint64(h)))
	}
	return pos
}
