package table

// Shared is a handle to a table used by several holders at once, typically an
// editor and one or more t-test engines.
//
// Holders keep the *Shared, not the *Table, and call Table on every use, so both
// in-place edits and wholesale replacement are seen by everyone at their next
// read. Shared does no locking.
type Shared[T Value] struct {
	table *Table[T]
}

// NewShared wraps t without copying it.
func NewShared[T Value](t *Table[T]) *Shared[T] {
	return &Shared[T]{table: t}
}

// Table returns the current table, or nil if none was set.
func (s *Shared[T]) Table() *Table[T] {
	return s.table
}

// Replace makes t the table seen by every holder of s.
func (s *Shared[T]) Replace(t *Table[T]) {
	s.table = t
}
