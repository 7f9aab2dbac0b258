package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/lineflow/buffer"
)

var editEscapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")

// parseEdit parses "ROW:COL[-ROW:COL]=TEXT" into a text edit. Rows and
// columns are zero-based; a single position inserts. TEXT may use \n, \t
// and \\ escapes.
func parseEdit(s string) (buffer.TextEdit, error) {
	spec, text, ok := strings.Cut(s, "=")
	if !ok {
		return buffer.TextEdit{}, fmt.Errorf("edit %q: missing '='", s)
	}

	from, to, spans := strings.Cut(spec, "-")
	start, err := parsePos(from)
	if err != nil {
		return buffer.TextEdit{}, fmt.Errorf("edit %q: %w", s, err)
	}
	end := start
	if spans {
		if end, err = parsePos(to); err != nil {
			return buffer.TextEdit{}, fmt.Errorf("edit %q: %w", s, err)
		}
	}

	return buffer.TextEdit{
		Range: buffer.Range{Start: start, End: end},
		Text:  editEscapes.Replace(text),
	}, nil
}

func parsePos(s string) (buffer.Pos, error) {
	row, col, ok := strings.Cut(s, ":")
	if !ok {
		return buffer.Pos{}, fmt.Errorf("position %q: want ROW:COL", s)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return buffer.Pos{}, fmt.Errorf("position %q: %w", s, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return buffer.Pos{}, fmt.Errorf("position %q: %w", s, err)
	}
	return buffer.Pos{Row: r, Col: c}, nil
}
