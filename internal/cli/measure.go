package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineflow/buffer"
)

func (c *CLI) measureCommand() *cobra.Command {
	var (
		quiet bool
		edits []string
	)

	cmd := &cobra.Command{
		Use:   "measure [file]",
		Short: "Print per-line widths and the layout extent",
		Long: `Print the measured width of every line, then the layout width (the
widest line) and height (line count times row height).

Each --edit ROW:COL[-ROW:COL]=TEXT is applied, in order and as one batch,
before reporting; the layout follows the edits incrementally.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd, args)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := applyEdits(cmd, s, edits); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !quiet {
				for i := range s.buf.LineCount() {
					fmt.Fprintf(out, "%d\t%d\n", i, s.buf.Line(i).Width)
				}
			}
			fmt.Fprintf(out, "width\t%d\nheight\t%d\n", s.lay.LayoutWidth(), s.lay.LayoutHeight())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the layout extent")
	cmd.Flags().StringArrayVarP(&edits, "edit", "e", nil, "apply an edit ROW:COL[-ROW:COL]=TEXT before measuring (repeatable)")
	return cmd
}

func applyEdits(cmd *cobra.Command, s *session, specs []string) error {
	if len(specs) == 0 {
		return nil
	}
	edits := make([]buffer.TextEdit, 0, len(specs))
	for _, spec := range specs {
		e, err := parseEdit(spec)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}
	n := s.buf.Apply(edits...)
	loggerFromContext(cmd.Context()).Debug("applied edits", "requested", len(edits), "effective", n)
	return nil
}
