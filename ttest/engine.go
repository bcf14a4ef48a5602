package ttest

import (
	"fmt"

	"github.com/arloliu/tstat/errs"
	"github.com/arloliu/tstat/internal/options"
	"github.com/arloliu/tstat/table"
)

// Engine computes the t-statistic of the table it is bound to.
//
// An Engine starts without data unless a data option is given. Once bound, it can
// be rebound to another table but never unbound. Engine does no locking; callers
// sharing the table across goroutines must synchronize themselves.
type Engine[T table.Value] struct {
	data     *table.Shared[T]
	testType TestType
}

// Option is a functional option for New.
type Option[T table.Value] = options.Option[*Engine[T]]

// WithType sets the test type. The default is Paired.
func WithType[T table.Value](tt TestType) Option[T] {
	return options.New(func(e *Engine[T]) error {
		return e.SetType(tt)
	})
}

// WithSharedData binds the engine to a shared table handle.
func WithSharedData[T table.Value](s *table.Shared[T]) Option[T] {
	return options.NoError(func(e *Engine[T]) {
		e.SetData(s)
	})
}

// WithData binds the engine to t without copying it.
func WithData[T table.Value](t *table.Table[T]) Option[T] {
	return options.NoError(func(e *Engine[T]) {
		e.AdoptData(t)
	})
}

// WithDataCopy binds the engine to a private copy of t.
func WithDataCopy[T table.Value](t *table.Table[T]) Option[T] {
	return options.NoError(func(e *Engine[T]) {
		e.CopyData(t)
	})
}

// New creates an engine.
//
// Parameters:
//   - opts: WithType and at most one of WithSharedData, WithData or WithDataCopy
//
// Returns:
//   - *Engine[T]: The engine, without data if no data option was given
//   - error: errs.ErrUnknownTestType if WithType received an undefined value
func New[T table.Value](opts ...Option[T]) (*Engine[T], error) {
	e := &Engine[T]{testType: Paired}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// HasData reports whether a table is bound.
func (e *Engine[T]) HasData() bool {
	return e.data != nil && e.data.Table() != nil
}

// Type returns the test type.
func (e *Engine[T]) Type() TestType {
	return e.testType
}

// SetType changes the test type used by later calls.
func (e *Engine[T]) SetType(tt TestType) error {
	if !tt.Valid() {
		return fmt.Errorf("%w: %s", errs.ErrUnknownTestType, tt)
	}
	e.testType = tt

	return nil
}

// Data returns the bound handle, or nil.
func (e *Engine[T]) Data() *table.Shared[T] {
	return e.data
}

// SetData binds the engine to s. A nil handle is ignored.
func (e *Engine[T]) SetData(s *table.Shared[T]) {
	if s == nil {
		return
	}
	e.data = s
}

// AdoptData binds the engine to t without copying it. A nil table is ignored.
func (e *Engine[T]) AdoptData(t *table.Table[T]) {
	if t == nil {
		return
	}
	e.data = table.NewShared(t)
}

// CopyData binds the engine to a private copy of t. A nil table is ignored.
func (e *Engine[T]) CopyData(t *table.Table[T]) {
	if t == nil {
		return
	}
	e.data = table.NewShared(t.Clone())
}

// T returns the t-statistic of the bound table for the current test type.
func (e *Engine[T]) T() (float64, error) {
	res, err := e.Compute()
	if err != nil {
		return 0, err
	}

	return res.T, nil
}

// Compute runs the test on the current content of the bound table.
//
// Returns:
//   - Result: Statistic, degrees of freedom and sample sizes
//   - error: errs.ErrNoData without a table, errs.ErrTooFewColumns when the
//     first row has fewer than two cells, or a range error from a short row
//     in a paired test
func (e *Engine[T]) Compute() (Result, error) {
	if !e.HasData() {
		return Result{}, errs.ErrNoData
	}

	t := e.data.Table()
	if cols := t.ColumnCount(); cols < 2 {
		return Result{}, fmt.Errorf("%w: table has %d", errs.ErrTooFewColumns, cols)
	}

	switch e.testType {
	case Unpaired:
		return unpaired(t)
	default:
		return paired(t)
	}
}
