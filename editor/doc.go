// Package editor provides a Bubble Tea text editor component backed by the
// buffer and layout packages.
//
// The editor lays text out in terminal cells: a layout.Flat measures every
// line with measure.Cells, so one layout pixel is one cell and one row is
// one terminal line. Scroll extent, mouse hit-testing and cursor placement
// all go through the layout.
package editor
