package squeeze

// StringProducer returns the ordered corpus a Table is built from. It
// must be pure: NewTable calls it exactly once, but nothing stops a
// caller from calling it again and getting an identical result.
type StringProducer func() []string

// Table is an index-keyed, read-only string table. Once built it never
// changes, so it is safe to share across goroutines; ByIndex returns a
// fresh Iterator per call, and iterators themselves are not safe to
// share.
type Table struct {
	data compiledTable
}

// NewTable compiles strings() with enc and returns the resulting table.
func NewTable(strings StringProducer, enc Encoder) (*Table, error) {
	data, err := enc.Compile(strings())
	if err != nil {
		return nil, err
	}
	return &Table{data: data}, nil
}

// MustNewTable is like NewTable but panics on error. It is meant for
// package-level var initializers building a table from a corpus that is
// itself a Go literal — the same role regexp.MustCompile plays for a
// literal pattern: any failure means the caller's static data is
// malformed, not that a caller needs to handle the error.
func MustNewTable(strings StringProducer, enc Encoder) *Table {
	t, err := NewTable(strings, enc)
	if err != nil {
		panic(err)
	}
	return t
}

// Count reports the number of strings in the table.
func (t *Table) Count() int { return t.data.Count() }

// ByIndex returns a decoder over the i-th string. An out-of-range index
// returns an iterator that is already at its end.
func (t *Table) ByIndex(i int) ByteIterator {
	if i < 0 || i >= t.data.Count() {
		return emptyIterator{}
	}
	return t.data.ByIndex(i)
}
