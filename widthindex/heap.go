package widthindex

type entry struct {
	value int
	slot  int
}

// entryHeap implements heap.Interface as a max-heap and keeps the owner's
// slot table pointing at each entry's current position.
type entryHeap struct {
	entries []entry
	owner   *Index
}

func (h *entryHeap) Len() int { return len(h.entries) }

func (h *entryHeap) Less(i, j int) bool { return h.entries[i].value > h.entries[j].value }

func (h *entryHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.owner.slots[h.entries[i].slot].pos = i
	h.owner.slots[h.entries[j].slot].pos = j
}

func (h *entryHeap) Push(x any) {
	e := x.(entry)
	h.owner.slots[e.slot].pos = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *entryHeap) Pop() any {
	n := len(h.entries)
	e := h.entries[n-1]
	h.entries = h.entries[:n-1]
	return e
}
