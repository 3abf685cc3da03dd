// pgmpreview renders a PGM (plain or raw) as a PNG so that low bit depth
// images can be inspected. The intensity range is stretched to 16 bits and
// the image can be upsampled with nearest neighbor resizing, which keeps
// every quantization level visible.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pgmtools"
	_ "github.com/carbocation/pgmtools/compileinfoprint"
	"github.com/carbocation/pgmtools/pgm"
	"github.com/disintegration/imaging"
)

func main() {
	var inputPath, outputFolder string
	var scale int

	flag.StringVar(&inputPath, "input", "", "Path to the source PGM, local or gs://.")
	flag.StringVar(&outputFolder, "output_folder", "", "Folder, local or gs://, where the PNG should be created.")
	flag.IntVar(&scale, "scale", 1, "Each pixel in the input will become this many pixels in the output.")
	flag.Parse()

	if inputPath == "" || outputFolder == "" || scale < 1 {
		flag.Usage()
		os.Exit(1)
	}

	client, err := pgmtools.NewClientIfNeeded(inputPath, outputFolder)
	if err != nil {
		log.Fatalln(err)
	}

	outPath, err := run(client, inputPath, outputFolder, scale)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Wrote", outPath)
}

func run(client *storage.Client, inputPath, outputFolder string, scale int) (string, error) {
	f, _, err := pgmtools.MaybeOpenFromGoogleStorage(inputPath, client)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, err := pgm.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", inputPath, err)
	}

	var preview image.Image = img.Gray16()
	if scale > 1 {
		preview = imaging.Resize(preview, img.Width*scale, img.Height*scale, imaging.NearestNeighbor)
	}

	// Output name: preview_<scale>_<input name>.png
	outPath := pgmtools.JoinPath(outputFolder, "preview_"+strconv.Itoa(scale)+"_"+
		strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))+".png")

	out, err := pgmtools.MaybeCreateOnGoogleStorage(outPath, client)
	if err != nil {
		return "", err
	}

	if err := png.Encode(out, preview); err != nil {
		out.Abort()
		return "", err
	}

	return outPath, out.Close()
}
