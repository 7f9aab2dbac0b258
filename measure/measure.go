// Package measure provides the font measurement engines consumed by the
// layout package.
//
// Every engine is a pure function of content and Style: the same input
// always yields the same width, and measurement never mutates shared state
// visible to callers. Widths are in the engine's pixel unit (terminal cells
// for Cells, device pixels for Face, millimetres for Vector).
package measure

// Style selects the face variant and size used for a measurement.
//
// Style is passed explicitly into every call so measurement stays
// referentially transparent.
type Style struct {
	Size   float64 // engine-specific size (points for Face and Vector); 0 uses the engine default
	Bold   bool
	Italic bool
}

// Measurer measures text widths.
type Measurer interface {
	// MeasureRun returns the advance width of text[start:end].
	MeasureRun(text []rune, start, end int, st Style) float64
	// MeasureChar returns the advance width of a single character.
	MeasureChar(ch rune, st Style) float64
}

// clampRun bounds [start, end) to text.
func clampRun(text []rune, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if end < start {
		end = start
	}
	return start, end
}

// SumChars measures text[start:end] as the sum of m.MeasureChar over its
// characters, with the range clamped to text. Engines whose run width has no
// kerning or shaping use it as their MeasureRun.
func SumChars(m Measurer, text []rune, start, end int, st Style) float64 {
	start, end = clampRun(text, start, end)
	w := 0.0
	for _, r := range text[start:end] {
		w += m.MeasureChar(r, st)
	}
	return w
}

// Fixed is a monospace engine: every character advances by Advance.
type Fixed struct {
	Advance float64
}

func (f Fixed) MeasureRun(text []rune, start, end int, st Style) float64 {
	start, end = clampRun(text, start, end)
	return float64(end-start) * f.Advance
}

func (f Fixed) MeasureChar(ch rune, st Style) float64 { return f.Advance }
