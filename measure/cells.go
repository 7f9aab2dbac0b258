package measure

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cells measures in terminal cells.
//
// Wide East Asian characters take two cells, combining marks take zero. Tab
// and other control characters count as one cell; callers that expand tabs
// do so on top of that single cell. Style is ignored.
type Cells struct{}

func (Cells) MeasureRun(text []rune, start, end int, st Style) float64 {
	return SumChars(Cells{}, text, start, end, st)
}

func (Cells) MeasureChar(ch rune, st Style) float64 {
	return float64(cellWidth(ch))
}

func cellWidth(ch rune) int {
	if ch == '\t' {
		return 1
	}
	if ch < 0x20 || ch == 0x7f {
		return 1
	}

	w := runewidth.RuneWidth(ch)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports 0 for some emoji presentation runes that
		// terminals still draw.
		if fallback := uniseg.StringWidth(string(ch)); fallback > w {
			w = fallback
		}
	}
	return w
}
