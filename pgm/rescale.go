package pgm

import (
	"io"
)

// ScalePixel linearly maps px from [0, oldMax] onto [0, newMax]:
//
//	floor(px * (newMax+1) / (oldMax+1))
//
// The arithmetic is exact. Values outside [0, oldMax] are mapped with the same
// formula; negative results truncate toward zero.
func ScalePixel(px, oldMax, newMax int) int {
	return int(int64(px) * int64(newMax+1) / int64(oldMax+1))
}

// Rescaler streams a PGM from a reader to a writer at a new depth.
type Rescaler struct {
	Target Target

	// KeepValues retains every pixel in the returned Summary so that a
	// histogram can be drawn.
	KeepValues bool
}

// Rescale is a Rescaler without retained values.
func Rescale(dst io.Writer, src io.Reader, t Target) (Summary, error) {
	return Rescaler{Target: t}.Run(dst, src)
}

// Run reads the header from src, writes the rescaled header to dst, then
// remaps and writes each pixel as it is read.
func (r Rescaler) Run(dst io.Writer, src io.Reader) (Summary, error) {
	sum := Summary{
		InStats:  NewStats(false),
		OutStats: NewStats(r.KeepValues),
	}

	dec, err := NewDecoder(src)
	if err != nil {
		return sum, err
	}
	sum.In = dec.Header()

	sum.Out = sum.In
	sum.Out.Magic = PlainMagic
	sum.Out.MaxValue = r.Target.Max()

	enc, err := NewEncoder(dst, sum.Out)
	if err != nil {
		return sum, err
	}

	for {
		px, err := dec.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return sum, err
		}

		npx := ScalePixel(px, sum.In.MaxValue, sum.Out.MaxValue)
		sum.InStats.Push(px)
		sum.OutStats.Push(npx)

		if err := enc.WritePixel(npx); err != nil {
			return sum, err
		}
	}

	return sum, enc.Flush()
}

// RescaleImage returns a copy of img at the target depth.
func RescaleImage(img *Image, t Target) *Image {
	out := &Image{
		Header: img.Header,
		Pix:    make([]int, len(img.Pix)),
	}
	out.Magic = PlainMagic
	out.MaxValue = t.Max()

	for i, px := range img.Pix {
		out.Pix[i] = ScalePixel(px, img.MaxValue, out.MaxValue)
	}

	return out
}
