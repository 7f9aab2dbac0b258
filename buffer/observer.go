package buffer

// Observer receives mutation notifications synchronously, right after the
// buffer changes and before the mutating call returns.
//
// Call order per primitive mutation:
//  1. BeforeReplace
//  2. exactly one of AfterInsert or AfterDelete
//  3. LineRemoved once per line physically deleted (deletions only)
//
// A replacement is a delete mutation followed by an insert mutation.
//
// start is inclusive and end exclusive. For AfterInsert, end is the position
// just past the inserted text in the new document. For AfterDelete, end is
// the position the deleted range ended at in the old document; rows
// start.Row+1..end.Row have been merged into start.Row and are reported via
// LineRemoved.
type Observer interface {
	BeforeReplace(t Text)
	AfterInsert(t Text, start, end Pos, inserted string)
	AfterDelete(t Text, start, end Pos, deleted string)
	LineRemoved(t Text, line *Line)
}

// AddObserver registers o. Registering the same observer twice is a no-op.
func (b *Buffer) AddObserver(o Observer) {
	for _, cur := range b.observers {
		if cur == o {
			return
		}
	}
	b.observers = append(b.observers, o)
}

// RemoveObserver unregisters o.
func (b *Buffer) RemoveObserver(o Observer) {
	for i, cur := range b.observers {
		if cur == o {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			return
		}
	}
}

func (b *Buffer) notifyBeforeReplace() {
	for _, o := range b.observers {
		o.BeforeReplace(b)
	}
}

func (b *Buffer) notifyInsert(start, end Pos, text string) {
	for _, o := range b.observers {
		o.AfterInsert(b, start, end, text)
	}
}

func (b *Buffer) notifyDelete(start, end Pos, text string, removed []*Line) {
	for _, o := range b.observers {
		o.AfterDelete(b, start, end, text)
		for _, l := range removed {
			o.LineRemoved(b, l)
		}
	}
}
