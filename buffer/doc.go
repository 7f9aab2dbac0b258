// Package buffer implements the rune-accurate document model consumed by the
// layout engine.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// Every text mutation is reported to registered observers in a fixed order:
// BeforeReplace, then exactly one of AfterInsert or AfterDelete, then one
// LineRemoved per line physically deleted by that mutation.
package buffer
