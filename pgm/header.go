// Package pgm reads, writes and rescales grayscale Portable Gray Map images.
//
// Plain (P2) images are parsed with a tokenizing reader that validates each
// header field and surfaces a *ParseError on mismatch. Raw (P5) images are
// decoded with github.com/jbuchbinder/gopnm. Output is always plain P2: one
// row per line, values separated by a single space.
package pgm

import (
	"errors"
	"fmt"
)

const (
	PlainMagic = "P2"
	RawMagic   = "P5"

	// MaxValueLimit is the largest max value a PGM header may declare.
	MaxValueLimit = 65535
)

var (
	ErrBadMagic     = errors.New("unsupported magic number")
	ErrBadDimension = errors.New("dimension must be a positive integer")
	ErrBadMaxValue  = fmt.Errorf("max value must be between 1 and %d", MaxValueLimit)
)

// Header holds the fields that precede the pixel stream.
type Header struct {
	Magic    string
	Width    int
	Height   int
	MaxValue int
}

// Pixels is the number of pixel values that follow the header.
func (h Header) Pixels() int {
	return h.Width * h.Height
}

func (h Header) String() string {
	return fmt.Sprintf("%s %dx%d max %d", h.Magic, h.Width, h.Height, h.MaxValue)
}

// ParseError reports a header field or pixel that could not be read.
type ParseError struct {
	// Field is "magic", "width", "height", "maxval" or "pixel N".
	Field string

	// Token is the offending text, empty when the input ended early.
	Token string

	Err error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("pgm: reading %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("pgm: invalid %s %q: %v", e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
