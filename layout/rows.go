package layout

import "iter"

// Row is one renderable row. In a flat layout it spans its whole line.
type Row struct {
	// Leading is set only on the first row an iterator produces.
	Leading     bool
	Line        int
	StartColumn int
	EndColumn   int
}

// RowIterator walks rows in order starting at a given row.
//
// Next reuses a single Row: the returned pointer is overwritten by the
// following call. A RowIterator has a single consumer.
type RowIterator struct {
	f       *Flat
	current int
	first   bool
	row     Row
}

// RowIterator returns an iterator positioned at initialRow. An initialRow
// outside [0, RowCount()) yields an iterator that is already exhausted.
func (f *Flat) RowIterator(initialRow int) *RowIterator {
	f.mustAlive()
	return &RowIterator{f: f, current: initialRow, first: true}
}

func (it *RowIterator) HasNext() bool {
	it.f.mustAlive()
	return it.current >= 0 && it.current < it.f.text.LineCount()
}

// Next returns the row at the current position and advances, or
// ErrExhausted when no rows remain.
func (it *RowIterator) Next() (*Row, error) {
	if !it.HasNext() {
		return nil, ErrExhausted
	}

	line := it.f.LineNumberForRow(it.current)
	it.row = Row{
		Leading:     it.first,
		Line:        line,
		StartColumn: 0,
		EndColumn:   it.f.text.ColumnCount(line),
	}
	it.first = false
	it.current++
	return &it.row, nil
}

// Rows yields rows by value from initialRow to the end. It panics with
// ErrDestroyed when called on a destroyed layout.
func (f *Flat) Rows(initialRow int) iter.Seq[Row] {
	f.mustAlive()
	return func(yield func(Row) bool) {
		it := f.RowIterator(initialRow)
		for {
			r, err := it.Next()
			if err != nil {
				return
			}
			if !yield(*r) {
				return
			}
		}
	}
}
