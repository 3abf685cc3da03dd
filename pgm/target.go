package pgm

import (
	"fmt"
)

// Selector says how a Target's value is to be read.
type Selector int

const (
	// BitCount treats the value as a number of bits: max = 2^bits - 1.
	BitCount Selector = iota

	// LiteralMax treats the value as the max value itself.
	LiteralMax
)

func (s Selector) String() string {
	switch s {
	case BitCount:
		return "BitCount"
	case LiteralMax:
		return "LiteralMax"
	}

	return fmt.Sprintf("Selector(%d)", int(s))
}

// SelectorFromFlag maps the command line convention (0 means bit count,
// anything else means literal max) onto a Selector.
func SelectorFromFlag(flag int) Selector {
	if flag == 0 {
		return BitCount
	}

	return LiteralMax
}

// MaxBits is the deepest bit count a PGM can hold.
const MaxBits = 16

// Target is the desired output depth.
type Target struct {
	Value    int
	Selector Selector
}

func NewTarget(value int, sel Selector) (Target, error) {
	t := Target{Value: value, Selector: sel}

	switch sel {
	case BitCount:
		if value < 1 || value > MaxBits {
			return t, fmt.Errorf("bit count %d out of range [1, %d]", value, MaxBits)
		}
	case LiteralMax:
		if value < 1 || value > MaxValueLimit {
			return t, fmt.Errorf("max value %d out of range [1, %d]", value, MaxValueLimit)
		}
	default:
		return t, fmt.Errorf("unknown selector %v", sel)
	}

	return t, nil
}

// Max is the max value declared by images rescaled to this target.
func (t Target) Max() int {
	if t.Selector == LiteralMax {
		return t.Value
	}

	return (1 << uint(t.Value)) - 1
}

// OutputName builds the file name for an image rescaled to the given bit
// count, e.g. "digits_4-bit.pgm". An empty base becomes "img".
func OutputName(base string, bits int) string {
	if base == "" {
		base = "img"
	}

	return fmt.Sprintf("%s_%d-bit.pgm", base, bits)
}
