package pgm

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
	"testing"

	pnm "github.com/jbuchbinder/gopnm"
)

func TestDecodeHeaderErrors(t *testing.T) {
	cases := []struct {
		in    string
		field string
		err   error
	}{
		{"", "magic", io.ErrUnexpectedEOF},
		{"P3\n2 1\n255\n", "magic", ErrBadMagic},
		{"P2\n2", "height", io.ErrUnexpectedEOF},
		{"P2\n0 1\n255\n", "width", ErrBadDimension},
		{"P2\n2 -1\n255\n", "height", ErrBadDimension},
		{"P2\n2 1\n0\n", "maxval", ErrBadMaxValue},
		{"P2\n2 1\n70000\n", "maxval", ErrBadMaxValue},
		{"P2\ntwo 1\n255\n", "width", strconv.ErrSyntax},
	}

	for _, c := range cases {
		_, err := NewDecoder(strings.NewReader(c.in))

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected a *ParseError, got %v", c.in, err)
			continue
		}
		if perr.Field != c.field {
			t.Errorf("%q: expected field %s, got %s", c.in, c.field, perr.Field)
		}
		if !errors.Is(err, c.err) {
			t.Errorf("%q: expected %v, got %v", c.in, c.err, err)
		}
	}
}

func TestDecodeBadPixel(t *testing.T) {
	_, err := Decode(strings.NewReader("P2\n2 1\n255\n12 x3\n"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected a *ParseError, got %v", err)
	}
	if perr.Field != "pixel 1" || perr.Token != "x3" {
		t.Errorf("Unexpected error %v", perr)
	}
}

func TestDecodeComments(t *testing.T) {
	in := "P2\n# written by a scanner\n3 2 # width height\n15\n#first row\n0 1 2\n3 4 5#end"

	img, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if img.Width != 3 || img.Height != 2 || img.MaxValue != 15 {
		t.Errorf("Unexpected header %v", img.Header)
	}
	for i, px := range img.Pix {
		if px != i {
			t.Errorf("Pixel %d: expected %d, got %d", i, i, px)
		}
	}
	if img.At(2, 1) != 5 {
		t.Errorf("Expected At(2, 1) to be 5, got %d", img.At(2, 1))
	}
}

func TestDecodeStopsAfterPixels(t *testing.T) {
	dec, err := NewDecoder(strings.NewReader("P2\n1 1\n1\n1 1 1\n"))
	if err != nil {
		t.Fatal(err)
	}

	if px, err := dec.Next(); err != nil || px != 1 {
		t.Fatalf("Expected 1, got %d (%v)", px, err)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestDecodeRaw(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(src.Pix, []uint8{0, 64, 128, 255})

	var raw bytes.Buffer
	if err := pnm.Encode(&raw, src, pnm.PGM); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sum, err := Rescale(&out, &raw, mustTarget(t, 2, BitCount))
	if err != nil {
		t.Fatal(err)
	}

	if sum.In.Magic != RawMagic || sum.In.MaxValue != 255 {
		t.Errorf("Unexpected input header %v", sum.In)
	}
	if expected := "P2\n2 2\n3\n0 1\n2 3\n"; out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestEncodeRejectsWrongPixelCount(t *testing.T) {
	img := &Image{Header: Header{Width: 2, Height: 2, MaxValue: 1}, Pix: []int{0, 1, 1}}

	var out bytes.Buffer
	if err := Encode(&out, img); err == nil {
		t.Error("Expected an error for 3 pixels in a 2x2 image")
	}

	if _, err := NewEncoder(&out, Header{Width: 0, Height: 1, MaxValue: 1}); !errors.Is(err, ErrBadDimension) {
		t.Errorf("Expected ErrBadDimension, got %v", err)
	}
}

func TestGray16(t *testing.T) {
	img := &Image{Header: Header{Width: 3, Height: 1, MaxValue: 15}, Pix: []int{0, 15, 20}}

	g := img.Gray16()
	for x, expected := range []uint16{0, 0xffff, 0xffff} {
		if got := g.Gray16At(x, 0).Y; got != expected {
			t.Errorf("x=%d: expected %d, got %d", x, expected, got)
		}
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewGray16(image.Rect(10, 10, 12, 11))
	src.SetGray16(10, 10, color.Gray16{Y: 0x8000})
	src.SetGray16(11, 10, color.Gray16{Y: 0xffff})

	img := FromImage(src, mustTarget(t, 4, BitCount))
	if img.Width != 2 || img.Height != 1 || img.MaxValue != 15 {
		t.Fatalf("Unexpected header %v", img.Header)
	}
	if img.Pix[0] != 8 || img.Pix[1] != 15 {
		t.Errorf("Expected [8 15], got %v", img.Pix)
	}
}
