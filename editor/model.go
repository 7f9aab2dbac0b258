package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineflow/buffer"
	"github.com/iw2rmb/lineflow/layout"
	"github.com/iw2rmb/lineflow/measure"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// The layout is attached to the buffer for the Model's lifetime, so hosts may
// mutate Buffer() directly and the next View reflects it. Call Close when
// the Model is discarded.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	lay *layout.Flat

	focused bool

	vp viewport

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	buf := buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit})
	m := Model{
		cfg: cfg,
		buf: buf,
		lay: layout.Attach(buf, tabCells{tabWidth: cfg.TabWidth}, layout.Config{
			RowHeight: 1,
			TabWidth:  1,
			Logger:    cfg.Logger,
		}),
		focused: true,
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Layout() *layout.Flat { return m.lay }

// Close detaches and destroys the layout. The Model must not be used
// afterwards.
func (m Model) Close() {
	m.lay.Destroy()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.vp.width = max(width, 0)
	m.vp.height = max(height, 0)
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// ScrollOffset returns the first visible row and the first visible cell.
func (m Model) ScrollOffset() (row, cell int) { return m.vp.yOffset, m.vp.xOffset }

// SetStyle switches the measurement style of the layout.
func (m Model) SetStyle(st measure.Style) Model {
	m.lay.SetStyle(st)
	m.clampOffsets()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	verBefore := m.buf.Version()
	textBefore := m.buf.TextVersion()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	m.clampOffsets()

	if m.cfg.OnChange != nil && m.buf.Version() != verBefore {
		m.cfg.OnChange(m.buildChangeEvent(m.buf.TextVersion() != textBefore))
	}
	return m, cmd
}

// syncFromBuffer records the buffer state and reports whether the cursor
// moved since the last sync.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	return cursorChanged
}
