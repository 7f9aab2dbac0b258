package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineflow/buffer"
	"github.com/iw2rmb/lineflow/layout"
)

// View renders exactly height lines. Rows past the end of the text render
// empty.
func (m Model) View() string {
	if m.vp.height <= 0 {
		return ""
	}
	out := make([]string, 0, m.vp.height)
	it := m.lay.RowIterator(m.vp.yOffset)
	for len(out) < m.vp.height && it.HasNext() {
		row, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, m.renderRow(row))
	}
	for len(out) < m.vp.height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

type cellKind int

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

// renderRow draws the cells of row that fall into [xOffset, xOffset+width).
// A wide character cut by either edge renders as spaces for its visible part.
func (m Model) renderRow(row *layout.Row) string {
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	st := m.lay.Config().Style
	meas := tabCells{tabWidth: m.cfg.TabWidth}

	var sb strings.Builder
	if m.cfg.ShowLineNums {
		sb.WriteString(m.renderGutter(row.Line, row.Line == cursor.Row))
	}

	left := m.vp.xOffset
	right := left + m.textWidth()
	runes := m.buf.Line(row.Line).Runes()

	var run strings.Builder
	runKind := cellText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runKind).Render(run.String()))
		run.Reset()
	}
	emit := func(kind cellKind, s string) {
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteString(s)
	}

	x := 0
	for col := row.StartColumn; col < row.EndColumn && x < right; col++ {
		ch := runes[col]
		w := int(meas.MeasureChar(ch, st))
		kind := m.kindAt(buffer.Pos{Row: row.Line, Col: col}, cursor, sel, selOK)

		switch {
		case w == 0:
			// Zero-width runes join the previous cell when it is visible.
			if x > left {
				emit(runKind, string(ch))
			}
		case x >= left && x+w <= right:
			if ch == '\t' {
				emit(kind, strings.Repeat(" ", w))
			} else {
				emit(kind, string(ch))
			}
		case x+w > left:
			visible := min(x+w, right) - max(x, left)
			emit(kind, strings.Repeat(" ", visible))
		}
		x += w
	}

	if m.focused && cursor.Row == row.Line && cursor.Col == len(runes) && x >= left && x < right {
		emit(cellCursor, " ")
	}
	flush()
	return sb.String()
}

func (m Model) kindAt(p, cursor buffer.Pos, sel buffer.Range, selOK bool) cellKind {
	if m.focused && p == cursor {
		return cellCursor
	}
	if selOK && buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0 {
		return cellSelected
	}
	return cellText
}

func (m Model) styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelected:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}
