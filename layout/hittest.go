package layout

import (
	"math"

	"github.com/iw2rmb/lineflow/buffer"
)

// PixelToPosition maps a point in layout space to the nearest caret
// position. Out-of-range coordinates clamp to the text; an empty text yields
// the zero position.
//
// The column is the first one whose accumulated width reaches x. When x lies
// past that width the caret moves one column further, so a point inside the
// last character of a line resolves to the line end.
func (f *Flat) PixelToPosition(x, y float64) buffer.Pos {
	f.mustAlive()

	n := f.text.LineCount()
	if n == 0 {
		return buffer.Pos{}
	}

	row := 0
	if y > 0 {
		row = int(math.Min(y/float64(f.cfg.RowHeight), float64(n-1)))
	}
	line := f.text.Line(f.LineNumberForRow(row))
	return buffer.Pos{Row: row, Col: f.columnAt(line.Runes(), x)}
}

func (f *Flat) columnAt(runes []rune, x float64) int {
	col, w := 0, 0.0
	for col < len(runes) && w < x {
		ch := runes[col]
		adv := f.m.MeasureChar(ch, f.cfg.Style)
		if ch == '\t' {
			adv *= float64(f.cfg.TabWidth)
		}
		w += adv
		col++
	}
	if w < x {
		col++
	}
	return min(col, len(runes))
}

// PositionToPixel returns the bottom-left corner of the caret at
// (line, column): y is the bottom edge of the row and x the width of the
// line's prefix. The column is clamped to the line; an out-of-range line
// panics with ErrLineOutOfRange.
func (f *Flat) PositionToPixel(line, column int) (y, x float64) {
	f.mustAlive()
	f.mustLine(line)

	runes := f.text.Line(line).Runes()
	column = min(max(column, 0), len(runes))
	y = float64((line + 1) * f.cfg.RowHeight)
	x = f.m.MeasureRun(runes, 0, column, f.cfg.Style)
	return y, x
}
