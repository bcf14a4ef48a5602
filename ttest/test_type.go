package ttest

import (
	"fmt"
	"strings"

	"github.com/arloliu/tstat/errs"
)

// TestType selects how the two columns are compared.
type TestType uint8

const (
	Paired   TestType = iota // Paired compares matched observations row by row.
	Unpaired                 // Unpaired compares two independent samples.
)

func (tt TestType) String() string {
	switch tt {
	case Paired:
		return "paired"
	case Unpaired:
		return "unpaired"
	default:
		return fmt.Sprintf("TestType(%d)", uint8(tt))
	}
}

// Valid reports whether tt is one of the defined test types.
func (tt TestType) Valid() bool {
	return tt == Paired || tt == Unpaired
}

// ParseTestType converts a name such as "paired" or "Unpaired" to a TestType.
// Matching ignores case and surrounding whitespace.
func ParseTestType(s string) (TestType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paired":
		return Paired, nil
	case "unpaired":
		return Unpaired, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownTestType, s)
	}
}
