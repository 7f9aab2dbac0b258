package editor

import (
	"fmt"
	"strconv"
)

// LineNumberWidth returns the line-number gutter width for lineCount,
// including the separator cell.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(m.buf.LineCount())
}

func (m Model) renderGutter(line int, cursorRow bool) string {
	digits := gutterDigits(m.buf.LineCount())
	st := m.cfg.Style.LineNum
	if m.focused && cursorRow {
		st = m.cfg.Style.LineNumActive
	}
	return st.Render(fmt.Sprintf("%*d", digits, line+1)) + m.cfg.Style.Gutter.Render(" ")
}
