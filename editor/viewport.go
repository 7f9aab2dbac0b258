package editor

// viewport is the visible window over the layout, in cells and rows.
type viewport struct {
	width, height int

	// yOffset is the first visible row, xOffset the first visible text cell.
	yOffset, xOffset int
}

// textWidth is the number of cells available for text after the gutter.
func (m Model) textWidth() int {
	return max(m.vp.width-m.gutterWidth(), 0)
}

// maxYOffset keeps the last row reachable at the bottom of the view.
func (m Model) maxYOffset() int {
	return max(m.lay.RowCount()-m.vp.height, 0)
}

// maxXOffset lets the view scroll one cell past the widest line so a cursor
// at its end stays visible.
func (m Model) maxXOffset() int {
	return max(m.lay.LayoutWidth()+1-m.textWidth(), 0)
}

func (m *Model) clampOffsets() {
	m.vp.yOffset = min(max(m.vp.yOffset, 0), m.maxYOffset())
	m.vp.xOffset = min(max(m.vp.xOffset, 0), m.maxXOffset())
}

func (m *Model) scrollBy(rows, cells int) {
	m.vp.yOffset += rows
	m.vp.xOffset += cells
	m.clampOffsets()
}

// followCursor scrolls the minimum amount that brings the cursor cell into
// view.
func (m *Model) followCursor() {
	if m.vp.height <= 0 {
		return
	}
	cur := m.buf.Cursor()

	if cur.Row < m.vp.yOffset {
		m.vp.yOffset = cur.Row
	} else if cur.Row >= m.vp.yOffset+m.vp.height {
		m.vp.yOffset = cur.Row - m.vp.height + 1
	}

	if w := m.textWidth(); w > 0 {
		_, fx := m.lay.PositionToPixel(cur.Row, cur.Col)
		x := int(fx)
		if x < m.vp.xOffset {
			m.vp.xOffset = x
		} else if x >= m.vp.xOffset+w {
			m.vp.xOffset = x - w + 1
		}
	}
	m.clampOffsets()
}
