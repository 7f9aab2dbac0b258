package layout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iw2rmb/lineflow/buffer"
	"github.com/iw2rmb/lineflow/measure"
)

func TestPixelToPosition_Table(t *testing.T) {
	_, f := newTestLayout(t, "abc\nde\n")

	cases := []struct {
		name string
		x, y float64
		want buffer.Pos
	}{
		{name: "origin", x: 0, y: 0, want: buffer.Pos{Row: 0, Col: 0}},
		{name: "inside first char", x: 5, y: 5, want: buffer.Pos{Row: 0, Col: 1}},
		{name: "exact boundary", x: 10, y: 5, want: buffer.Pos{Row: 0, Col: 1}},
		{name: "just past boundary", x: 10.5, y: 5, want: buffer.Pos{Row: 0, Col: 2}},
		{name: "inside last char", x: 25, y: 5, want: buffer.Pos{Row: 0, Col: 3}},
		{name: "past line end", x: 500, y: 5, want: buffer.Pos{Row: 0, Col: 3}},
		{name: "negative x", x: -4, y: 25, want: buffer.Pos{Row: 1, Col: 0}},
		{name: "second row", x: 15, y: 39.9, want: buffer.Pos{Row: 1, Col: 2}},
		{name: "empty last line", x: 99, y: 45, want: buffer.Pos{Row: 2, Col: 0}},
		{name: "below text", x: 12, y: 1e9, want: buffer.Pos{Row: 2, Col: 0}},
		{name: "above text", x: 12, y: -50, want: buffer.Pos{Row: 0, Col: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.PixelToPosition(tc.x, tc.y); got != tc.want {
				t.Fatalf("PixelToPosition(%v, %v): got %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestPixelToPosition_TabUsesMultiplier(t *testing.T) {
	b := buffer.New("\tx", buffer.Options{})
	f := New(b, measure.Fixed{Advance: 10}, Config{TabWidth: 4})
	defer f.Destroy()

	// The tab spans [0, 40) for hit-testing.
	if got, want := f.PixelToPosition(35, 0), (buffer.Pos{Col: 1}); got != want {
		t.Fatalf("inside tab: got %v, want %v", got, want)
	}
	if got, want := f.PixelToPosition(45, 0), (buffer.Pos{Col: 2}); got != want {
		t.Fatalf("after tab: got %v, want %v", got, want)
	}

	// Cached width and PositionToPixel ignore the multiplier.
	if got, want := f.LayoutWidth(), 20; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}
	if _, x := f.PositionToPixel(0, 1); x != 10 {
		t.Fatalf("x after tab: got %v, want 10", x)
	}
}

func TestPixelToPosition_EmptyLayout(t *testing.T) {
	f := New(emptyText{}, measure.Fixed{Advance: 10}, Config{})
	defer f.Destroy()

	if got := f.PixelToPosition(42, 42); got != (buffer.Pos{}) {
		t.Fatalf("empty: got %v, want zero position", got)
	}
	if got := f.LayoutWidth(); got != 0 {
		t.Fatalf("width: got %d, want 0", got)
	}
	if f.RowIterator(0).HasNext() {
		t.Fatalf("empty layout has rows")
	}
}

type emptyText struct{}

func (emptyText) LineCount() int          { return 0 }
func (emptyText) Line(i int) *buffer.Line { panic("no lines") }
func (emptyText) ColumnCount(i int) int   { panic("no lines") }

func TestPositionToPixel(t *testing.T) {
	_, f := newTestLayout(t, "abc\nde")

	cases := []struct {
		line, col int
		y, x      float64
	}{
		{line: 0, col: 0, y: 20, x: 0},
		{line: 0, col: 2, y: 20, x: 20},
		{line: 1, col: 2, y: 40, x: 20},
		{line: 1, col: 99, y: 40, x: 20},
		{line: 1, col: -3, y: 40, x: 0},
	}
	for _, tc := range cases {
		y, x := f.PositionToPixel(tc.line, tc.col)
		if y != tc.y || x != tc.x {
			t.Fatalf("PositionToPixel(%d, %d): got (%v, %v), want (%v, %v)", tc.line, tc.col, y, x, tc.y, tc.x)
		}
	}
}

func TestPositionToPixel_LineOutOfRangePanics(t *testing.T) {
	_, f := newTestLayout(t, "abc")
	mustPanicWith(t, ErrLineOutOfRange, func() { f.PositionToPixel(1, 0) })
	mustPanicWith(t, ErrLineOutOfRange, func() { f.PositionToPixel(-1, 0) })
}

// Converting a caret to pixels and back lands on the same caret when the
// point is taken at the caret's left edge inside the row.
func TestHitTest_RoundTrip(t *testing.T) {
	_, f := newTestLayout(t, "hello\n\nworld wide\nx")
	rng := rand.New(rand.NewPCG(3, 5))

	for range 500 {
		line := rng.IntN(f.RowCount())
		col := rng.IntN(f.text.ColumnCount(line) + 1)
		y, x := f.PositionToPixel(line, col)

		got := f.PixelToPosition(x, y-1)
		if want := (buffer.Pos{Row: line, Col: col}); got != want {
			t.Fatalf("round trip (%d, %d) via (%v, %v): got %v", line, col, x, y, got)
		}
	}
}

func TestPixelToPosition_NeverFails(t *testing.T) {
	_, f := newTestLayout(t, "a\tb\n\nccc")
	rng := rand.New(rand.NewPCG(9, 9))

	for range 1000 {
		x := (rng.Float64() - 0.5) * 1000
		y := (rng.Float64() - 0.5) * 1000
		p := f.PixelToPosition(x, y)
		if p.Row < 0 || p.Row >= f.RowCount() {
			t.Fatalf("row out of range for (%v, %v): %v", x, y, p)
		}
		if p.Col < 0 || p.Col > f.text.ColumnCount(p.Row) {
			t.Fatalf("column out of range for (%v, %v): %v", x, y, p)
		}
	}

	for _, v := range []float64{math.Inf(1), math.Inf(-1)} {
		p := f.PixelToPosition(v, v)
		if p.Row < 0 || p.Row >= f.RowCount() {
			t.Fatalf("row out of range for %v: %v", v, p)
		}
	}
}
