package buffer

import "github.com/iw2rmb/lineflow/widthindex"

// Line is one logical line of the document.
//
// Width and Handle belong to the layout attached to the buffer: the buffer
// never reads them, and creates new lines with Handle == widthindex.NoHandle.
// A Line pointer is stable for the line's lifetime, so observers can use it
// to identify a line after it has been removed.
type Line struct {
	runes []rune

	// Width is the cached measured width, valid while Handle is assigned.
	Width int
	// Handle addresses the line's entry in the layout's width index.
	Handle widthindex.Handle
}

func newLine(runes []rune) *Line {
	return &Line{runes: runes}
}

// Runes returns the line content. Callers must not modify it.
func (l *Line) Runes() []rune { return l.runes }

func (l *Line) Len() int { return len(l.runes) }

func (l *Line) String() string { return string(l.runes) }

// Text is the read-only line view observers and layouts consume.
type Text interface {
	LineCount() int
	Line(i int) *Line
	ColumnCount(i int) int
}

var _ Text = (*Buffer)(nil)

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns line i. It panics when i is out of range.
func (b *Buffer) Line(i int) *Line { return b.lines[i] }

// ColumnCount returns the rune length of line i.
func (b *Buffer) ColumnCount(i int) int { return len(b.lines[i].runes) }
