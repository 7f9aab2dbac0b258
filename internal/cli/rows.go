package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) rowsCommand() *cobra.Command {
	var from, limit int

	cmd := &cobra.Command{
		Use:   "rows [file]",
		Short: "List renderable rows starting at a row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd, args)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			n := 0
			for row := range s.lay.Rows(from) {
				if limit > 0 && n == limit {
					break
				}
				lead := ""
				if row.Leading {
					lead = "\tleading"
				}
				fmt.Fprintf(out, "%d\t%d-%d%s\n", row.Line, row.StartColumn, row.EndColumn, lead)
				n++
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "first row")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum rows to print (0 for all)")
	return cmd
}
