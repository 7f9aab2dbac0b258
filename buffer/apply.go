package buffer

// Apply runs edits in order as one undo step and returns how many of them
// changed the text. Each range is clamped against the document as it stands
// when that edit runs, so later edits see the effect of earlier ones.
//
// When any edit applies, the cursor lands at the end of the last effective
// edit and the selection is cleared.
func (b *Buffer) Apply(edits ...TextEdit) int {
	prev := b.snapshot()
	change := b.beginChange()

	n := 0
	cursor := b.cursor
	for _, e := range edits {
		end, applied, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		n++
		cursor = end
		change.addAppliedEdit(applied)
	}
	if n == 0 {
		return 0
	}

	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	return n
}
