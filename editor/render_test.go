package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/lineflow/buffer"
)

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return Style{
		Text:      r.NewStyle(),
		Selection: r.NewStyle().Underline(true),
		Cursor:    r.NewStyle().Reverse(true),
	}
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := range 120 {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := newTestModel(t, Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := plainView(m)
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}
	for i, line := range lines {
		want := fmt.Sprintf("%3d x", i+1)
		if line != want {
			t.Fatalf("line %d: got %q, want %q", i+1, line, want)
		}
	}
}

func TestRender_CursorUsesCursorStyle(t *testing.T) {
	st := testStyle()
	m := newTestModel(t, Config{Text: "ab", Style: st})
	m = m.SetSize(10, 1)
	m.buf.SetCursor(buffer.Pos{Row: 0, Col: 1})

	got := m.View()
	want := st.Text.Render("a") + st.Cursor.Render("b")
	if got != want {
		t.Fatalf("cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtLineEndDrawsCell(t *testing.T) {
	st := testStyle()
	m := newTestModel(t, Config{Text: "ab", Style: st})
	m = m.SetSize(10, 1)
	m.buf.SetCursor(buffer.Pos{Row: 0, Col: 2})

	got := m.View()
	want := st.Text.Render("ab") + st.Cursor.Render(" ")
	if got != want {
		t.Fatalf("cursor rendering:\n got: %q\nwant: %q", got, want)
	}

	m = m.Blur()
	if got := m.View(); ansi.Strip(got) != "ab" {
		t.Fatalf("blurred view: got %q, want %q", ansi.Strip(got), "ab")
	}
}

func TestRender_SelectionAcrossLines(t *testing.T) {
	st := testStyle()
	m := newTestModel(t, Config{Text: "abc\ndef", Style: st})
	m = m.Blur().SetSize(10, 2)
	m.buf.SetSelection(buffer.Range{Start: buffer.Pos{Row: 0, Col: 2}, End: buffer.Pos{Row: 1, Col: 1}})

	got := strings.Split(m.View(), "\n")
	want := []string{
		st.Text.Render("ab") + st.Selection.Render("c"),
		st.Selection.Render("d") + st.Text.Render("ef"),
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("selection rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CombiningMarkStaysWithBase(t *testing.T) {
	m := newTestModel(t, Config{Text: "ae\u0301z"})
	m = m.Blur().SetSize(10, 1)

	if got, want := plainView(m)[0], "ae\u0301z"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
	if got, want := m.Layout().LayoutWidth(), 3; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}
}
