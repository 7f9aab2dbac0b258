package buffer

import "github.com/iw2rmb/lineflow/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	line := b.lines[row].runes

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: grapheme.Prev(line, col)}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: b.lineLen(row - 1)}
	case DirRight:
		if col < len(line) {
			return Pos{Row: row, Col: grapheme.Next(line, col)}
		}
		if row == len(b.lines)-1 {
			return p
		}
		return Pos{Row: row + 1, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row].runes

	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: b.lineLen(row)}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: min(col, b.lineLen(row-1))}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Col: min(col, b.lineLen(row+1))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Col: b.lineLen(lastRow)}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace clusters, then skip non-whitespace clusters
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []rune, col int) int {
	bounds := grapheme.Boundaries(line)
	i := clusterIndexAt(bounds, col)
	for i > 0 && grapheme.IsSpace(line[bounds[i-1]:bounds[i]]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[bounds[i-1]:bounds[i]]) {
		i--
	}
	return bounds[i]
}

func nextWordBoundary(line []rune, col int) int {
	bounds := grapheme.Boundaries(line)
	last := len(bounds) - 1
	i := clusterIndexAt(bounds, col)
	for i < last && grapheme.IsSpace(line[bounds[i]:bounds[i+1]]) {
		i++
	}
	for i < last && !grapheme.IsSpace(line[bounds[i]:bounds[i+1]]) {
		i++
	}
	return bounds[i]
}

// clusterIndexAt returns the index in bounds of the last boundary <= col.
func clusterIndexAt(bounds []int, col int) int {
	i := 0
	for i+1 < len(bounds) && bounds[i+1] <= col {
		i++
	}
	return i
}
