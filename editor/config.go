package editor

import "github.com/charmbracelet/log"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// TabWidth is the number of cells a tab occupies. Default 4.
	TabWidth int

	// Forwarded to buffer.Options.
	HistoryLimit int

	// ReadOnly disables every text mutation from input.
	ReadOnly bool

	KeyMap    KeyMap
	Clipboard Clipboard

	// OnChange is called after an update that changed the buffer version.
	OnChange func(ChangeEvent)

	// Logger is forwarded to the layout. Nil disables logging.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
