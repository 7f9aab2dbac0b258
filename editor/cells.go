package editor

import "github.com/iw2rmb/lineflow/measure"

// tabCells measures terminal cells with tabs expanded to a fixed width, so
// cached widths, cursor placement and hit-testing agree on tab extent.
type tabCells struct {
	measure.Cells
	tabWidth int
}

func (c tabCells) MeasureChar(ch rune, st measure.Style) float64 {
	if ch == '\t' {
		return float64(c.tabWidth)
	}
	return c.Cells.MeasureChar(ch, st)
}

func (c tabCells) MeasureRun(text []rune, start, end int, st measure.Style) float64 {
	return measure.SumChars(c, text, start, end, st)
}
