package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineflow/buffer"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab"})

	m, _ = m.Update(keyType(tea.KeyRight))
	m, _ = m.Update(keyRunes("X"))
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(keyType(tea.KeyBackspace))
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(keyType(tea.KeyRight))
	m, _ = m.Update(keyRunes("X"))
	m, _ = m.Update(keyType(tea.KeyTab))
	m, _ = m.Update(keyType(tea.KeyEnter))
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text in read-only: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor in read-only: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab"})
	m = m.Blur()

	m, _ = m.Update(keyRunes("X"))
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := newTestModel(t, Config{Text: ""})

	m, _ = m.Update(keyRunes("a"))
	m, _ = m.Update(keyType(tea.KeyEnter))
	m, _ = m.Update(keyRunes("bc"))
	if got, want := m.lay.LayoutWidth(), 2; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}

	m, _ = m.Update(keyType(tea.KeyCtrlZ))
	m, _ = m.Update(keyType(tea.KeyCtrlZ))
	if got, want := m.buf.Text(), "a"; got != want {
		t.Fatalf("after undo: got %q, want %q", got, want)
	}
	if got, want := m.lay.LayoutWidth(), 1; got != want {
		t.Fatalf("width after undo: got %d, want %d", got, want)
	}

	m, _ = m.Update(keyType(tea.KeyCtrlY))
	if got, want := m.buf.Text(), "a\n"; got != want {
		t.Fatalf("after redo: got %q, want %q", got, want)
	}
}

func TestUpdate_ClipboardCopyCutPaste(t *testing.T) {
	clip := &memClipboard{}
	m := newTestModel(t, Config{Text: "hello\nworld", Clipboard: clip})

	m.buf.SetSelection(buffer.Range{Start: buffer.Pos{Row: 0, Col: 3}, End: buffer.Pos{Row: 1, Col: 2}})
	m, _ = m.Update(keyType(tea.KeyCtrlC))
	if got, want := clip.s, "lo\nwo"; got != want {
		t.Fatalf("copied: got %q, want %q", got, want)
	}

	m, _ = m.Update(keyType(tea.KeyCtrlX))
	if got, want := m.buf.Text(), "helrld"; got != want {
		t.Fatalf("after cut: got %q, want %q", got, want)
	}

	clip.s = "A\r\nB"
	m, _ = m.Update(keyType(tea.KeyCtrlV))
	if got, want := m.buf.Text(), "helA\nBrld"; got != want {
		t.Fatalf("after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_PasteEventInsertsLiterally(t *testing.T) {
	m := newTestModel(t, Config{Text: ""})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\r\ny"), Paste: true})
	if got, want := m.buf.Text(), "x\ny"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_PageDownMovesCursorAndView(t *testing.T) {
	m := newTestModel(t, Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(5, 3)

	m, _ = m.Update(keyType(tea.KeyPgDown))
	if got, want := m.buf.Cursor().Row, 3; got != want {
		t.Fatalf("cursor row: got %d, want %d", got, want)
	}
	if row, _ := m.ScrollOffset(); row != 3 {
		t.Fatalf("row offset: got %d, want 3", row)
	}

	m, _ = m.Update(keyType(tea.KeyPgUp))
	if got, want := m.buf.Cursor().Row, 0; got != want {
		t.Fatalf("cursor row: got %d, want %d", got, want)
	}
}
