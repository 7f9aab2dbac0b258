package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineflow/buffer"
)

const wheelStep = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.scrollBy(-wheelStep, 0)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scrollBy(wheelStep, 0)
			return m, nil
		case tea.MouseButtonWheelLeft:
			m.scrollBy(0, -wheelStep)
			return m, nil
		case tea.MouseButtonWheelRight:
			m.scrollBy(0, wheelStep)
			return m, nil
		}
	}

	if !m.focused {
		return m, nil
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}

		p := m.screenToDocPos(msg.X, msg.Y)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if raw, ok := m.buf.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetCursor(p)
			m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
			m.buf.ClearSelection()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.screenToDocPos(x, y)
		m.buf.SetCursor(p)
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

// screenToDocPos maps a cell relative to the editor's origin to a document
// position. Clicks on the gutter land on column 0 of their row.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	lx := x - m.gutterWidth()
	if lx < 0 {
		lx = -m.vp.xOffset
	}
	return m.lay.PixelToPosition(float64(lx+m.vp.xOffset), float64(y+m.vp.yOffset))
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.vp.width <= 0 || m.vp.height <= 0 {
		return false
	}
	return x >= 0 && x < m.vp.width && y >= 0 && y < m.vp.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.vp.width > 0 {
		x = min(max(x, 0), m.vp.width-1)
	}
	if m.vp.height > 0 {
		y = min(max(y, 0), m.vp.height-1)
	}
	return x, y
}
