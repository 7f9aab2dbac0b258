package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) hitCommand() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "hit [file]",
		Short: "Map a pixel to a line and column",
		Long: `Map the point (--x, --y) to the nearest caret position, then map that
position back to pixels. The second line shows the bottom-left corner of the
caret.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd, args)
			if err != nil {
				return err
			}
			defer s.Close()

			p := s.lay.PixelToPosition(x, y)
			py, px := s.lay.PositionToPixel(p.Row, p.Col)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "position\t%s\n", p)
			fmt.Fprintf(out, "caret\t%g,%g\n", px, py)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "horizontal pixel coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "vertical pixel coordinate")
	return cmd
}
