package pgm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Encoder writes a plain (P2) PGM. Values on a row are separated by a single
// space and every row ends with a newline.
type Encoder struct {
	bw      *bufio.Writer
	header  Header
	written int
	buf     []byte
}

// NewEncoder writes the header for h to w. The magic is always P2, whatever
// h.Magic says.
func NewEncoder(w io.Writer, h Header) (*Encoder, error) {
	if h.Width < 1 || h.Height < 1 {
		return nil, fmt.Errorf("cannot encode %dx%d image: %w", h.Width, h.Height, ErrBadDimension)
	}
	if h.MaxValue < 1 || h.MaxValue > MaxValueLimit {
		return nil, fmt.Errorf("cannot encode max value %d: %w", h.MaxValue, ErrBadMaxValue)
	}
	h.Magic = PlainMagic

	e := &Encoder{bw: bufio.NewWriter(w), header: h}
	if _, err := fmt.Fprintf(e.bw, "%s\n%d %d\n%d\n", h.Magic, h.Width, h.Height, h.MaxValue); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Encoder) WritePixel(px int) error {
	e.buf = strconv.AppendInt(e.buf[:0], int64(px), 10)
	e.written++
	if e.written%e.header.Width == 0 {
		e.buf = append(e.buf, '\n')
	} else {
		e.buf = append(e.buf, ' ')
	}

	_, err := e.bw.Write(e.buf)
	return err
}

// Flush writes any buffered output. It reports an error if fewer or more
// pixels than the header declares were written.
func (e *Encoder) Flush() error {
	if err := e.bw.Flush(); err != nil {
		return err
	}

	if e.written != e.header.Pixels() {
		return fmt.Errorf("wrote %d pixels, header declares %d", e.written, e.header.Pixels())
	}

	return nil
}

// Encode writes img as a plain PGM.
func Encode(w io.Writer, img *Image) error {
	enc, err := NewEncoder(w, img.Header)
	if err != nil {
		return err
	}

	for _, px := range img.Pix {
		if err := enc.WritePixel(px); err != nil {
			return err
		}
	}

	return enc.Flush()
}
