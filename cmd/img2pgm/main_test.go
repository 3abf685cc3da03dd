package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/pgmtools/pgm"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readPGM(t *testing.T, path string) *pgm.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := pgm.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	return img
}

func TestRunPlain(t *testing.T) {
	dir := t.TempDir()

	src := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 32)
	}
	writePNG(t, filepath.Join(dir, "digit.png"), src)

	target, _ := pgm.NewTarget(4, pgm.BitCount)
	if err := run(nil, filepath.Join(dir, "digit.png"), filepath.Join(dir, "digit.pgm"), target, 0, false); err != nil {
		t.Fatal(err)
	}

	img := readPGM(t, filepath.Join(dir, "digit.pgm"))
	if img.Width != 4 || img.Height != 2 || img.MaxValue != 15 {
		t.Fatalf("Unexpected header %v", img.Header)
	}

	// 8-bit values are widened to 16 bits (v*257) before quantizing, so each
	// lands on v>>4.
	for i, px := range img.Pix {
		if expected := (i * 32) >> 4; px != expected {
			t.Errorf("Pixel %d: expected %d, got %d", i, expected, px)
		}
	}
}

func TestRunResizeAndRaw(t *testing.T) {
	dir := t.TempDir()

	src := image.NewGray(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			src.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	writePNG(t, filepath.Join(dir, "big.png"), src)

	target, _ := pgm.NewTarget(8, pgm.BitCount)
	if err := run(nil, filepath.Join(dir, "big.png"), filepath.Join(dir, "small.pgm"), target, 4, true); err != nil {
		t.Fatal(err)
	}

	img := readPGM(t, filepath.Join(dir, "small.pgm"))
	if img.Magic != pgm.RawMagic || img.Width != 4 || img.Height != 2 || img.MaxValue != 255 {
		t.Fatalf("Unexpected header %v", img.Header)
	}
	for i, px := range img.Pix {
		if px != 255 {
			t.Errorf("Pixel %d: expected 255, got %d", i, px)
		}
	}
}
