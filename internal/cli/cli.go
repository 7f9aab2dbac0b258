// Package cli implements the lineflow command-line interface.
//
// The reporting commands load a text (a file argument, or stdin when the
// argument is missing or "-"), lay it out with the engine selected by
// --config, and report on the layout. edit takes a file path only. Loggers travel through context.Context; --verbose
// enables debug output from the layout itself.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineflow"
	"github.com/iw2rmb/lineflow/buffer"
	"github.com/iw2rmb/lineflow/internal/config"
	"github.com/iw2rmb/lineflow/layout"
)

const appName = "lineflow"

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

func New(w io.Writer) *CLI {
	return &CLI{Logger: newLogger(w, log.InfoLevel)}
}

// RootCommand builds the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flat line layout: widths, hit-testing and rows for text",
		Version:      lineflow.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(lineflow.VersionLine() + "\n")

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML config file (default: terminal cells)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.measureCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.rowsCommand())
	root.AddCommand(c.editCommand())
	return root
}

// Execute runs the root command with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// session is a loaded text laid out under the active configuration.
type session struct {
	cfg  config.Config
	path string
	buf  *buffer.Buffer
	lay  *layout.Flat
}

func (s *session) Close() { s.lay.Destroy() }

func (c *CLI) openSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	m, err := cfg.Measurer()
	if err != nil {
		return nil, err
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	text, err := readText(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("loaded text", "path", path, "engine", cfg.Engine, "bytes", len(text))

	buf := buffer.New(text, buffer.Options{})
	return &session{
		cfg:  cfg,
		path: path,
		buf:  buf,
		lay:  layout.Attach(buf, m, cfg.Layout(logger)),
	}, nil
}

func readText(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
