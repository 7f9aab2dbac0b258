package buffer

import (
	"slices"
	"strings"

	"github.com/iw2rmb/lineflow/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.commitEdit(r, s)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. It removes one grapheme
// cluster, or joins with the previous line at the start of a line.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	var start Pos
	if col > 0 {
		start = Pos{Row: row, Col: grapheme.Prev(b.lines[row].runes, col)}
	} else {
		// Join with previous line (delete the newline).
		start = Pos{Row: row - 1, Col: len(b.lines[row-1].runes)}
	}
	b.commitEdit(Range{Start: start, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow].runes) {
		return
	}

	var end Pos
	if col < len(b.lines[row].runes) {
		end = Pos{Row: row, Col: grapheme.Next(b.lines[row].runes, col)}
	} else {
		// Join with next line (delete the newline).
		end = Pos{Row: row + 1, Col: 0}
	}
	b.commitEdit(Range{Start: b.cursor, End: end}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.commitEdit(r, "")
}

// commitEdit applies one user edit as a single undoable change.
func (b *Buffer) commitEdit(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange()

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

// replaceRange replaces r with text as a delete mutation followed by an
// insert mutation, notifying observers for each.
func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	b.deleteRange(r, deletedText)
	nextCursor = b.insertAt(r.Start, text)
	b.textVersion++

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

// deleteRange removes r, merging the tail of r.End.Row into r.Start.Row.
func (b *Buffer) deleteRange(r Range, deletedText string) {
	if r.IsEmpty() {
		return
	}
	b.notifyBeforeReplace()

	first := b.lines[r.Start.Row]
	last := b.lines[r.End.Row]
	merged := make([]rune, 0, r.Start.Col+len(last.runes)-r.End.Col)
	merged = append(merged, first.runes[:r.Start.Col]...)
	merged = append(merged, last.runes[r.End.Col:]...)

	var removed []*Line
	if r.Spans() {
		removed = slices.Clone(b.lines[r.Start.Row+1 : r.End.Row+1])
		b.lines = slices.Delete(b.lines, r.Start.Row+1, r.End.Row+1)
	}
	first.runes = merged

	b.notifyDelete(r.Start, r.End, deletedText, removed)
}

// insertAt inserts text at p and returns the position just past it.
func (b *Buffer) insertAt(p Pos, text string) Pos {
	if text == "" {
		return p
	}
	b.notifyBeforeReplace()

	parts := strings.Split(text, "\n")
	line := b.lines[p.Row]
	suffix := append([]rune(nil), line.runes[p.Col:]...)

	var end Pos
	if len(parts) == 1 {
		ins := []rune(parts[0])
		runes := make([]rune, 0, len(line.runes)+len(ins))
		runes = append(runes, line.runes[:p.Col]...)
		runes = append(runes, ins...)
		runes = append(runes, suffix...)
		line.runes = runes
		end = Pos{Row: p.Row, Col: p.Col + len(ins)}
	} else {
		head := make([]rune, 0, p.Col+len(parts[0]))
		head = append(head, line.runes[:p.Col]...)
		head = append(head, []rune(parts[0])...)
		line.runes = head

		added := make([]*Line, 0, len(parts)-1)
		for _, part := range parts[1 : len(parts)-1] {
			added = append(added, newLine([]rune(part)))
		}
		tail := []rune(parts[len(parts)-1])
		end = Pos{Row: p.Row + len(parts) - 1, Col: len(tail)}
		added = append(added, newLine(append(tail, suffix...)))
		b.lines = slices.Insert(b.lines, p.Row+1, added...)
	}

	b.notifyInsert(p, end, text)
	return end
}

func textForLinesRange(lines []*Line, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	if !r.Spans() {
		return string(lines[r.Start.Row].runes[r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		runes := lines[row].runes
		partStart, partEnd := 0, len(runes)
		if row == r.Start.Row {
			partStart = r.Start.Col
		}
		if row == r.End.Row {
			partEnd = r.End.Col
		}
		sb.WriteString(string(runes[partStart:partEnd]))
	}
	return sb.String()
}
