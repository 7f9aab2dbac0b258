package measure

import (
	"math"
	"testing"
)

func TestFixed_RunIsCharCountTimesAdvance(t *testing.T) {
	f := Fixed{Advance: 10}
	text := []rune("abc\td")

	if got, want := f.MeasureRun(text, 0, len(text), Style{}), 50.0; got != want {
		t.Fatalf("run width: got %v, want %v", got, want)
	}
	if got, want := f.MeasureRun(text, 1, 3, Style{}), 20.0; got != want {
		t.Fatalf("partial run width: got %v, want %v", got, want)
	}
	if got, want := f.MeasureChar('\t', Style{}), 10.0; got != want {
		t.Fatalf("tab width: got %v, want %v", got, want)
	}
}

func TestFixed_RunClampsBounds(t *testing.T) {
	f := Fixed{Advance: 2}
	text := []rune("abcd")

	if got, want := f.MeasureRun(text, -3, 99, Style{}), 8.0; got != want {
		t.Fatalf("clamped run: got %v, want %v", got, want)
	}
	if got := f.MeasureRun(text, 3, 1, Style{}); got != 0 {
		t.Fatalf("inverted run: got %v, want 0", got)
	}
}

func TestCells_WideAndControlCharacters(t *testing.T) {
	var c Cells
	cases := []struct {
		ch   rune
		want float64
	}{
		{ch: 'a', want: 1},
		{ch: '界', want: 2},
		{ch: '\t', want: 1},
		{ch: 0x01, want: 1},
	}
	for _, tc := range cases {
		if got := c.MeasureChar(tc.ch, Style{}); got != tc.want {
			t.Fatalf("MeasureChar(%q): got %v, want %v", tc.ch, got, tc.want)
		}
	}

	text := []rune("a界b")
	if got, want := c.MeasureRun(text, 0, len(text), Style{}), 4.0; got != want {
		t.Fatalf("run width: got %v, want %v", got, want)
	}
}

func TestBitmap_SevenPixelAdvance(t *testing.T) {
	var b Bitmap
	text := []rune("hello")
	if got, want := b.MeasureRun(text, 0, len(text), Style{}), 35.0; got != want {
		t.Fatalf("run width: got %v, want %v", got, want)
	}
}

func TestFace_TabMeasuresAsSpaceAndSizeScales(t *testing.T) {
	f, err := NewFace(72)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}

	st := Style{Size: 12}
	space := f.MeasureChar(' ', st)
	if space <= 0 {
		t.Fatalf("space width: got %v, want > 0", space)
	}
	if got := f.MeasureChar('\t', st); got != space {
		t.Fatalf("tab width: got %v, want %v", got, space)
	}

	small := f.MeasureChar('M', Style{Size: 12})
	large := f.MeasureChar('M', Style{Size: 24})
	if math.Abs(large-2*small) > 2 {
		t.Fatalf("size scaling: 12pt=%v 24pt=%v", small, large)
	}

	text := []rune("a\tb")
	if got := f.MeasureRun(text, 0, len(text), st); got <= 0 {
		t.Fatalf("run with tab: got %v, want > 0", got)
	}
}

func TestFace_ReusesCachedFacePerStyle(t *testing.T) {
	f, err := NewFace(0)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	f.MeasureChar('a', Style{})
	f.MeasureChar('b', Style{})
	f.MeasureChar('a', Style{Bold: true})
	if got, want := len(f.cache), 2; got != want {
		t.Fatalf("cached faces: got %d, want %d", got, want)
	}
}

func TestVector_WidthsScaleLinearly(t *testing.T) {
	v, err := NewVector()
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}

	small := v.MeasureChar('M', Style{Size: 12})
	large := v.MeasureChar('M', Style{Size: 24})
	if small <= 0 {
		t.Fatalf("width: got %v, want > 0", small)
	}
	if math.Abs(large-2*small) > small*1e-3 {
		t.Fatalf("size scaling: 12pt=%v 24pt=%v", small, large)
	}

	text := []rune("MM")
	if got := v.MeasureRun(text, 0, 2, Style{Size: 12}); got <= small {
		t.Fatalf("run width: got %v, want > %v", got, small)
	}
}

type countingMeasurer struct {
	Fixed
	charCalls int
}

func (c *countingMeasurer) MeasureChar(ch rune, st Style) float64 {
	c.charCalls++
	return c.Fixed.MeasureChar(ch, st)
}

func TestCache_MemoizesPerCharAndStyle(t *testing.T) {
	inner := &countingMeasurer{Fixed: Fixed{Advance: 3}}
	c := NewCache(inner)

	for i := 0; i < 3; i++ {
		if got, want := c.MeasureChar('x', Style{}), 3.0; got != want {
			t.Fatalf("width: got %v, want %v", got, want)
		}
	}
	c.MeasureChar('x', Style{Bold: true})

	if got, want := inner.charCalls, 2; got != want {
		t.Fatalf("inner calls: got %d, want %d", got, want)
	}
	if got, want := c.Len(), 2; got != want {
		t.Fatalf("cache len: got %d, want %d", got, want)
	}

	c.Reset()
	c.MeasureChar('x', Style{})
	if got, want := inner.charCalls, 3; got != want {
		t.Fatalf("inner calls after reset: got %d, want %d", got, want)
	}
}

func TestSumChars_ClampsLikeFixed(t *testing.T) {
	text := []rune("abc")
	fixed := Fixed{Advance: 2}
	for _, tc := range []struct{ start, end int }{{-3, 2}, {1, 9}, {2, 1}, {0, 3}} {
		got := SumChars(fixed, text, tc.start, tc.end, Style{})
		want := fixed.MeasureRun(text, tc.start, tc.end, Style{})
		if got != want {
			t.Fatalf("run [%d,%d): got %v, want %v", tc.start, tc.end, got, want)
		}
	}
}
