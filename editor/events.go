package editor

import "github.com/iw2rmb/lineflow/buffer"

// ChangeEvent reports the editor state after a change.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// LayoutWidth is the widest line in cells after the change.
	LayoutWidth int
	// Change is the last text change, when the update changed text.
	Change    buffer.Change
	HasChange bool
}

func (m Model) buildChangeEvent(textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     m.buf.Version(),
		Cursor:      m.buf.Cursor(),
		LayoutWidth: m.lay.LayoutWidth(),
	}
	if r, ok := m.buf.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if textChanged {
		ev.Change, ev.HasChange = m.buf.LastChange()
	}
	return ev
}
