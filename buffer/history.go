package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

// restore rewrites the document to s through the regular delete/insert
// mutations, so observers see undo and redo like any other edit. Only the
// span between the common prefix and suffix is replaced.
func (b *Buffer) restore(s bufferSnapshot) (AppliedEdit, bool) {
	applied, changed := AppliedEdit{}, false
	if cur := b.Text(); cur != s.text {
		r, text := b.diffRange(cur, s.text)
		_, applied, changed = b.replaceRange(r, text)
	}

	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if s.sel.active {
		anchor := b.clampPos(s.sel.anchor)
		end := b.clampPos(s.sel.end)
		if anchor != end {
			b.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
	return applied, changed
}

// diffRange returns the range of cur that differs from target, and the
// target text that replaces it.
func (b *Buffer) diffRange(cur, target string) (Range, string) {
	from, to := []rune(cur), []rune(target)

	prefix := 0
	for prefix < len(from) && prefix < len(to) && from[prefix] == to[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(from)-prefix && suffix < len(to)-prefix &&
		from[len(from)-1-suffix] == to[len(to)-1-suffix] {
		suffix++
	}

	r := Range{Start: b.posAt(prefix), End: b.posAt(len(from) - suffix)}
	return r, string(to[prefix : len(to)-suffix])
}

// posAt maps a rune offset into the document text, counting each line
// break as one rune, to a position.
func (b *Buffer) posAt(off int) Pos {
	for row, line := range b.lines {
		if off <= len(line.runes) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line.runes) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last].runes)}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange()

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	if applied, ok := b.restore(prev); ok {
		change.addAppliedEdit(applied)
	}
	b.version++
	b.commitChange(change)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange()

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	if applied, ok := b.restore(next); ok {
		change.addAppliedEdit(applied)
	}
	b.version++
	b.commitChange(change)
	return true
}
