// Package layout implements a flat (non-wrapping) line layout.
//
// Every logical line occupies exactly one row. Flat keeps one measured width
// per line in a widthindex.Index so the widest line is available in O(1) for
// scroll extent, and re-measures only the lines an edit touched.
//
// Tabs are measured differently by the two paths: cached widths and
// PositionToPixel use the engine's own width for '\t', while PixelToPosition
// advances by that width times Config.TabWidth.
//
// Flat is not safe for concurrent use.
package layout

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/lineflow/buffer"
	"github.com/iw2rmb/lineflow/measure"
	"github.com/iw2rmb/lineflow/widthindex"
)

var (
	// ErrDestroyed is the panic value (wrapped) for any call after Destroy.
	ErrDestroyed = errors.New("layout: destroyed")
	// ErrLineOutOfRange is the panic value (wrapped) for a line index outside
	// the text.
	ErrLineOutOfRange = errors.New("layout: line out of range")
	// ErrExhausted is returned by RowIterator.Next past the last row.
	ErrExhausted = errors.New("layout: no more rows")
)

const (
	defaultRowHeight = 1
	defaultTabWidth  = 4
)

type Config struct {
	RowHeight int // pixels per row; default 1
	TabWidth  int // tab multiplier used by PixelToPosition; default 4
	Style     measure.Style

	// Logger receives debug events. Nil disables logging.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.RowHeight <= 0 {
		c.RowHeight = defaultRowHeight
	}
	if c.TabWidth <= 0 {
		c.TabWidth = defaultTabWidth
	}
	return c
}

// Flat lays out one row per line.
type Flat struct {
	text  buffer.Text
	m     measure.Measurer
	cfg   Config
	index *widthindex.Index

	// owner is set by Attach so Destroy can unregister.
	owner *buffer.Buffer

	destroyed bool
}

var _ buffer.Observer = (*Flat)(nil)

// New builds a layout over text and measures every line.
func New(text buffer.Text, m measure.Measurer, cfg Config) *Flat {
	f := &Flat{
		text:  text,
		m:     m,
		cfg:   cfg.withDefaults(),
		index: widthindex.New(),
	}
	f.MeasureAll()
	return f
}

// Attach builds a layout over b and registers it as b's observer.
func Attach(b *buffer.Buffer, m measure.Measurer, cfg Config) *Flat {
	f := New(b, m, cfg)
	f.owner = b
	b.AddObserver(f)
	return f
}

// Config returns the effective configuration.
func (f *Flat) Config() Config {
	f.mustAlive()
	return f.cfg
}

// MeasureAll discards every cached width and measures the whole text.
func (f *Flat) MeasureAll() {
	f.mustAlive()

	n := f.text.LineCount()
	f.index.Release()
	f.index.Reserve(n)
	for i := range n {
		line := f.text.Line(i)
		line.Width = f.measure(line)
		line.Handle = f.index.Insert(line.Width)
	}
	f.debug("measured all lines", "lines", n, "width", f.layoutWidth())
}

// SetStyle switches the measurement style and re-measures every line.
func (f *Flat) SetStyle(st measure.Style) {
	f.mustAlive()
	if st == f.cfg.Style {
		return
	}
	f.cfg.Style = st
	f.debug("style changed", "size", st.Size, "bold", st.Bold, "italic", st.Italic)
	f.MeasureAll()
}

// BeforeReplace is part of buffer.Observer. Flat has nothing to prepare.
func (f *Flat) BeforeReplace(t buffer.Text) {
	f.mustAlive()
}

// AfterInsert re-measures every line the inserted text now occupies.
func (f *Flat) AfterInsert(t buffer.Text, start, end buffer.Pos, text string) {
	f.mustAlive()
	f.measureLines(t, start.Row, end.Row)
}

// AfterDelete re-measures the line the deletion merged into.
func (f *Flat) AfterDelete(t buffer.Text, start, end buffer.Pos, text string) {
	f.mustAlive()
	f.measureLines(t, start.Row, start.Row)
}

// LineRemoved drops the width of a line that no longer exists. It panics
// with widthindex.ErrStaleHandle when the line was never measured.
func (f *Flat) LineRemoved(t buffer.Text, line *buffer.Line) {
	f.mustAlive()
	f.index.Remove(line.Handle)
	line.Handle = widthindex.NoHandle
}

func (f *Flat) measureLines(t buffer.Text, from, to int) {
	to = min(to, t.LineCount()-1)
	for i := max(from, 0); i <= to; i++ {
		line := t.Line(i)
		w := f.measure(line)
		if line.Handle == widthindex.NoHandle {
			line.Width = w
			line.Handle = f.index.Insert(w)
			continue
		}
		if w == line.Width {
			continue
		}
		line.Width = w
		f.index.Update(line.Handle, w)
	}
}

func (f *Flat) measure(line *buffer.Line) int {
	runes := line.Runes()
	return int(f.m.MeasureRun(runes, 0, len(runes), f.cfg.Style))
}

// LayoutWidth returns the widest line's width, or 0 for an empty layout.
func (f *Flat) LayoutWidth() int {
	f.mustAlive()
	return f.layoutWidth()
}

func (f *Flat) layoutWidth() int {
	if f.index.Len() == 0 {
		return 0
	}
	return f.index.Max()
}

// LayoutHeight returns the total height of all rows.
func (f *Flat) LayoutHeight() int {
	f.mustAlive()
	return f.text.LineCount() * f.cfg.RowHeight
}

// RowCount returns the number of rows, which equals the line count.
func (f *Flat) RowCount() int {
	f.mustAlive()
	return f.text.LineCount()
}

// LineNumberForRow maps a row to its line. In a flat layout they coincide.
func (f *Flat) LineNumberForRow(row int) int {
	f.mustAlive()
	return row
}

// Destroy unregisters the layout and releases its index. It is idempotent.
func (f *Flat) Destroy() {
	if f.destroyed {
		return
	}
	if f.owner != nil {
		f.owner.RemoveObserver(f)
		f.owner = nil
	}
	f.index.Release()
	f.debug("destroyed")

	f.index = nil
	f.m = nil
	f.text = nil
	f.destroyed = true
}

func (f *Flat) mustAlive() {
	if f.destroyed {
		panic(ErrDestroyed)
	}
}

func (f *Flat) mustLine(line int) {
	if n := f.text.LineCount(); line < 0 || line >= n {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrLineOutOfRange, line, n))
	}
}

func (f *Flat) debug(msg string, kv ...any) {
	if f.cfg.Logger != nil {
		f.cfg.Logger.Debug(msg, kv...)
	}
}
