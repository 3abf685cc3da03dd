package pgm

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"strconv"

	pnm "github.com/jbuchbinder/gopnm"
)

// Decoder reads a PGM header and then yields pixel values one at a time, in
// row-major order. Plain images are streamed; raw images are decoded whole.
type Decoder struct {
	br     *bufio.Reader
	header Header
	read   int
	buf    []byte

	// Populated only for raw (P5) images.
	raw []int
}

// NewDecoder reads and validates the header from r. The returned error is a
// *ParseError when the header is malformed.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{br: bufio.NewReader(r)}

	if magic, _ := d.br.Peek(2); string(magic) == RawMagic {
		if err := d.decodeRaw(); err != nil {
			return nil, err
		}

		return d, nil
	}

	if err := d.readHeader(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Decoder) Header() Header {
	return d.header
}

// Next returns the next pixel value. It returns io.EOF once Width*Height
// values have been read. Pixel values are not checked against the max value.
func (d *Decoder) Next() (int, error) {
	if d.read >= d.header.Pixels() {
		return 0, io.EOF
	}

	if d.raw != nil {
		px := d.raw[d.read]
		d.read++
		return px, nil
	}

	field := "pixel " + strconv.Itoa(d.read)
	tok, err := d.token()
	if err == io.EOF {
		return 0, &ParseError{Field: field, Err: io.ErrUnexpectedEOF}
	} else if err != nil {
		return 0, &ParseError{Field: field, Err: err}
	}

	px, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Field: field, Token: tok, Err: err}
	}
	d.read++

	return px, nil
}

// ReadAll consumes the remaining pixels into an Image.
func (d *Decoder) ReadAll() (*Image, error) {
	img := &Image{Header: d.header, Pix: make([]int, 0, d.header.Pixels()-d.read)}

	for {
		px, err := d.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		img.Pix = append(img.Pix, px)
	}

	return img, nil
}

func (d *Decoder) readHeader() error {
	magic, err := d.token()
	if err != nil {
		return &ParseError{Field: "magic", Err: eof(err)}
	}
	if magic != PlainMagic {
		return &ParseError{Field: "magic", Token: magic, Err: ErrBadMagic}
	}
	d.header.Magic = magic

	fields := []struct {
		name string
		dst  *int
		max  int
		err  error
	}{
		{"width", &d.header.Width, 0, ErrBadDimension},
		{"height", &d.header.Height, 0, ErrBadDimension},
		{"maxval", &d.header.MaxValue, MaxValueLimit, ErrBadMaxValue},
	}

	for _, f := range fields {
		tok, err := d.token()
		if err != nil {
			return &ParseError{Field: f.name, Err: eof(err)}
		}

		v, err := strconv.Atoi(tok)
		if err != nil {
			return &ParseError{Field: f.name, Token: tok, Err: err}
		}
		if v < 1 || (f.max > 0 && v > f.max) {
			return &ParseError{Field: f.name, Token: tok, Err: f.err}
		}

		*f.dst = v
	}

	return nil
}

// token returns the next whitespace-delimited token, skipping '#' comments.
func (d *Decoder) token() (string, error) {
	for {
		c, err := d.br.ReadByte()
		if err != nil {
			return "", err
		}

		if c == '#' {
			if _, err := d.br.ReadString('\n'); err != nil {
				return "", err
			}
			continue
		}

		if !isSpace(c) {
			d.br.UnreadByte()
			break
		}
	}

	d.buf = d.buf[:0]
	for {
		c, err := d.br.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}

		if isSpace(c) {
			break
		}
		if c == '#' {
			d.br.UnreadByte()
			break
		}

		d.buf = append(d.buf, c)
	}

	return string(d.buf), nil
}

func (d *Decoder) decodeRaw() error {
	data, err := ioutil.ReadAll(d.br)
	if err != nil {
		return &ParseError{Field: "magic", Err: err}
	}

	cfg, err := pnm.DecodeConfigPNM(bufio.NewReader(bytes.NewReader(data)))
	if err != nil {
		return &ParseError{Field: "header", Err: err}
	}

	img, err := pnm.Decode(bytes.NewReader(data))
	if err != nil {
		return &ParseError{Field: "pixel data", Err: err}
	}

	d.header = Header{Magic: RawMagic, Width: cfg.Width, Height: cfg.Height, MaxValue: cfg.Maxval}
	d.raw = make([]int, 0, d.header.Pixels())

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch g := img.(type) {
			case *image.Gray:
				d.raw = append(d.raw, int(g.GrayAt(x, y).Y))
			case *image.Gray16:
				d.raw = append(d.raw, int(g.Gray16At(x, y).Y))
			default:
				return &ParseError{Field: "pixel data", Err: fmt.Errorf("unexpected image type %T", img)}
			}
		}
	}

	return nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

func eof(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
