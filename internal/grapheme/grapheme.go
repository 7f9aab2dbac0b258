package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Boundaries returns the rune offsets at which grapheme clusters of line
// start, followed by len(line). An empty line yields [0].
func Boundaries(line []rune) []int {
	out := make([]int, 0, len(line)+1)
	out = append(out, 0)
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Next returns the rune offset of the cluster boundary after col.
func Next(line []rune, col int) int {
	if col >= len(line) {
		return len(line)
	}
	for _, b := range Boundaries(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// Prev returns the rune offset of the cluster boundary before col.
func Prev(line []rune, col int) int {
	if col <= 0 {
		return 0
	}
	prev := 0
	for _, b := range Boundaries(line) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster []rune) bool {
	if len(cluster) == 0 {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
