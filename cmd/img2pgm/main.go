// img2pgm converts a PNG, GIF, JPEG, BMP or PNM image into a grayscale PGM at
// the requested bit depth, optionally resizing it first. This is how source
// images are turned into the digit datasets consumed by pgmcompress.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pgmtools"
	_ "github.com/carbocation/pgmtools/compileinfoprint"
	"github.com/carbocation/pgmtools/pgm"
	"github.com/disintegration/imaging"
	pnm "github.com/jbuchbinder/gopnm"
)

func main() {
	var inputPath, outputPath string
	var bits, max, width int
	var raw bool

	flag.StringVar(&inputPath, "input", "", "Path to the source image, local or gs://.")
	flag.StringVar(&outputPath, "output", "", "(Optional) Path to the output PGM, local or gs://. If empty, writes to standard output.")
	flag.IntVar(&bits, "bits", 8, "Number of bits for the output's max value.")
	flag.IntVar(&max, "max", 0, "(Optional) Literal max value for the output. Overrides -bits when nonzero.")
	flag.IntVar(&width, "width", 0, "(Optional) Resize to this width before conversion, preserving the aspect ratio.")
	flag.BoolVar(&raw, "raw", false, "(Optional) Write a binary P5 file. Raw output is always stored with 8 bits, whatever -bits says.")
	flag.Parse()

	if inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	target, err := pgm.NewTarget(bits, pgm.BitCount)
	if max != 0 {
		target, err = pgm.NewTarget(max, pgm.LiteralMax)
	}
	if err != nil {
		log.Fatalln(err)
	}

	client, err := pgmtools.NewClientIfNeeded(inputPath, outputPath)
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(client, inputPath, outputPath, target, width, raw); err != nil {
		log.Fatalln(err)
	}
}

func run(client *storage.Client, inputPath, outputPath string, target pgm.Target, width int, raw bool) error {
	src, format, err := pgmtools.OpenImage(inputPath, client)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	log.Printf("Decoded %s as %s (%dx%d)\n", inputPath, format, src.Bounds().Dx(), src.Bounds().Dy())

	if width > 0 && width != src.Bounds().Dx() {
		src = imaging.Resize(src, width, 0, imaging.Lanczos)
	}

	img := pgm.FromImage(src, target)

	var w io.Writer = os.Stdout
	if outputPath != "" {
		out, err := pgmtools.MaybeCreateOnGoogleStorage(outputPath, client)
		if err != nil {
			return err
		}
		if err := write(out, img, raw); err != nil {
			out.Abort()
			return fmt.Errorf("%s: %w", outputPath, err)
		}

		return out.Close()
	}

	return write(w, img, raw)
}

func write(w io.Writer, img *pgm.Image, raw bool) error {
	if raw {
		var gray image.Image = img.Gray16()
		return pnm.Encode(w, gray, pnm.PGM)
	}

	return pgm.Encode(w, img)
}
