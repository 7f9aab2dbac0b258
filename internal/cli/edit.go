package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineflow/editor"
	"github.com/iw2rmb/lineflow/internal/config"
)

func (c *CLI) editCommand() *cobra.Command {
	var lineNums bool

	cmd := &cobra.Command{
		Use:   "edit file",
		Short: "Edit a file in the terminal",
		Long: `Open an interactive editor laid out in terminal cells. A file that does
not exist yet starts empty and is created on save.

ctrl+s saves, esc or ctrl+q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadEditorConfig(cmd, args)
			if err != nil {
				return err
			}
			cfg.ShowLineNums = lineNums

			app := newEditApp(cfg.path, cfg.Config)
			defer app.editor.Close()

			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			if a, ok := final.(editApp); ok && a.saveErr != nil {
				return a.saveErr
			}
			loggerFromContext(cmd.Context()).Debug("editor closed", "path", cfg.path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&lineNums, "line-numbers", "l", true, "show line numbers")
	return cmd
}

type editorConfig struct {
	editor.Config
	path string
}

// loadEditorConfig reads path for the editor. Unlike the reporting
// commands it never reads stdin, which the TUI owns.
func (c *CLI) loadEditorConfig(cmd *cobra.Command, args []string) (editorConfig, error) {
	path := args[0]
	if path == "-" {
		return editorConfig{}, errors.New("edit: stdin cannot be edited, pass a file path")
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return editorConfig{}, err
	}

	text, err := readText(nil, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		loggerFromContext(cmd.Context()).Debug("new file", "path", path)
		text = ""
	case err != nil:
		return editorConfig{}, err
	}

	return editorConfig{
		Config: editor.Config{
			Text:     text,
			TabWidth: cfg.TabWidth,
			Style:    editor.DefaultStyle(),
		},
		path: path,
	}, nil
}

type editKeys struct {
	Save, Quit key.Binding
}

var defaultEditKeys = editKeys{
	Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Quit: key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
}

// editApp hosts the editor with a one-line status bar.
type editApp struct {
	editor editor.Model
	path   string
	keys   editKeys

	status  string
	saveErr error
	width   int
}

var statusStyle = lipgloss.NewStyle().Reverse(true)

func newEditApp(path string, cfg editor.Config) editApp {
	return editApp{
		editor: editor.New(cfg),
		path:   path,
		keys:   defaultEditKeys,
	}
}

func (a editApp) Init() tea.Cmd { return a.editor.Init() }

func (a editApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Save):
			a.save()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *editApp) save() {
	if err := os.WriteFile(a.path, []byte(a.editor.Buffer().Text()), 0o644); err != nil {
		a.saveErr = fmt.Errorf("save %s: %w", a.path, err)
		a.status = a.saveErr.Error()
		return
	}
	a.saveErr = nil
	a.status = "saved " + a.path
}

func (a editApp) View() string {
	cur := a.editor.Buffer().Cursor()
	status := fmt.Sprintf(" %s  %d:%d  width %d", a.path, cur.Row+1, cur.Col+1, a.editor.Layout().LayoutWidth())
	if a.status != "" {
		status += "  " + a.status
	}
	return a.editor.View() + "\n" + statusStyle.Width(a.width).MaxWidth(a.width).Render(status)
}
