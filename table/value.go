package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/arloliu/tstat/errs"
)

// Value is the set of cell types a Table can hold.
//
// Only floating-point kinds qualify because a missing cell is represented by NaN.
type Value interface {
	~float32 | ~float64
}

// Missing returns the missing-cell sentinel for T.
func Missing[T Value]() T {
	return T(math.NaN())
}

// IsMissing reports whether v is the missing-cell sentinel.
func IsMissing[T Value](v T) bool {
	return math.IsNaN(float64(v))
}

// bitSize returns 32 or 64 depending on the width of T.
func bitSize[T Value]() int {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return 32
	}

	return 64
}

// Parser converts one trimmed field into a cell value.
//
// Implementations must be deterministic and must reject a field unless the whole
// field is consumed: "12.3xyz" is an error, not 12.3. Errors should wrap
// errs.ErrInvalidValue.
type Parser[T Value] interface {
	Parse(s string) (T, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc[T Value] func(s string) (T, error)

// Parse calls f(s).
func (f ParserFunc[T]) Parse(s string) (T, error) {
	return f(s)
}

type floatParser[T Value] struct{}

// FloatParser returns the default parser: decimal or scientific notation with the
// precision of T. Surrounding whitespace is ignored.
func FloatParser[T Value]() Parser[T] {
	return floatParser[T]{}
}

func (floatParser[T]) Parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return Missing[T](), fmt.Errorf("%w: %q", errs.ErrInvalidValue, s)
	}

	return T(v), nil
}

type intParser[T Value] struct {
	base int
}

// IntParser returns a parser for integers written in base 2 to 36. The parsed
// integer is stored as T, so values beyond the precision of T are rounded.
//
// Parameters:
//   - base: Numeric base of the fields (2-36)
//
// Returns:
//   - Parser[T]: The integer parser
//   - error: errs.ErrInvalidBase if base is out of range
func IntParser[T Value](base int) (Parser[T], error) {
	if base < 2 || base > 36 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBase, base)
	}

	return intParser[T]{base: base}, nil
}

func (p intParser[T]) Parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, p.base, 64)
	if err != nil {
		return Missing[T](), fmt.Errorf("%w: %q in base %d", errs.ErrInvalidValue, s, p.base)
	}

	return T(v), nil
}
