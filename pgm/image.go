package pgm

import (
	"image"
	"image/color"
	"io"
)

// Image is a decoded grayscale grid. Pix is in row-major order and, for a
// well-formed image, has Width*Height values in [0, MaxValue].
type Image struct {
	Header
	Pix []int
}

// Decode reads a whole PGM (plain or raw) from r.
func Decode(r io.Reader) (*Image, error) {
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}

	return dec.ReadAll()
}

// At returns the value at column x, row y.
func (m *Image) At(x, y int) int {
	return m.Pix[y*m.Width+x]
}

// Gray16 stretches the image onto the full 16-bit range so that it can be
// handed to the standard image encoders. Out of range values are clamped.
func (m *Image) Gray16() *image.Gray16 {
	out := image.NewGray16(image.Rect(0, 0, m.Width, m.Height))

	for i, px := range m.Pix {
		v := int64(px) * 0xffff / int64(m.MaxValue)
		if v < 0 {
			v = 0
		} else if v > 0xffff {
			v = 0xffff
		}

		out.SetGray16(i%m.Width, i/m.Width, color.Gray16{Y: uint16(v)})
	}

	return out
}

// FromImage converts any image to grayscale at the target depth, using the
// same linear mapping as Rescale with a 16-bit source range.
func FromImage(src image.Image, t Target) *Image {
	b := src.Bounds()

	out := &Image{
		Header: Header{
			Magic:    PlainMagic,
			Width:    b.Dx(),
			Height:   b.Dy(),
			MaxValue: t.Max(),
		},
		Pix: make([]int, 0, b.Dx()*b.Dy()),
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(src.At(x, y)).(color.Gray16)
			out.Pix = append(out.Pix, ScalePixel(int(g.Y), 0xffff, out.MaxValue))
		}
	}

	return out
}
