// pgmcompress rescales the bit depth of a grayscale PGM. Each pixel is mapped
// linearly from the input's [0, max] range onto [0, 2^bits - 1] (or onto
// [0, bits] when the literal flag is set), truncating toward zero:
//
//	new = floor(old * (newMax+1) / (oldMax+1))
//
// The image is read from standard input (or -input) and written as a plain P2
// PGM to standard output, or to <output_folder>/<name>_<bits>-bit.pgm.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pgmtools"
	_ "github.com/carbocation/pgmtools/compileinfoprint"
	"github.com/carbocation/pgmtools/pgm"
)

// errUsage means the positional arguments could not be used; the caller
// prints the usage text and exits with status 1.
var errUsage = errors.New("usage")

func init() {
	flag.Usage = func() {
		usage(os.Stdout)
	}
}

func usage(w io.Writer) {
	flag.CommandLine.SetOutput(w)
	fmt.Fprintf(w, "Usage: %s [flags] bit [name] [r]\n"+
		"  bit - number of bits for the image's max value\n"+
		"  name - base of the output file name, used with -output_folder (default \"img\")\n"+
		"  r - r=0 if bit is the number of bits to be used, else bit is the max value itself.\n"+
		"Flags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var inputPath, outputFolder string
	var verbose, histogram bool

	flag.StringVar(&inputPath, "input", "", "(Optional) Path to the source PGM, local or gs://. If empty, reads standard input.")
	flag.StringVar(&outputFolder, "output_folder", "", "(Optional) Folder, local or gs://, where <name>_<bit>-bit.pgm will be written. If empty, writes to standard output.")
	flag.BoolVar(&verbose, "verbose", false, "(Optional) Log timing and summary statistics of the input and output pixels.")
	flag.BoolVar(&histogram, "histogram", false, "(Optional) Print a histogram of the output pixel values to standard error.")
	flag.Parse()

	target, name, err := parseArgs(flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(1)
	} else if err != nil {
		log.Fatalln(err)
	}

	start := time.Now()
	if verbose {
		log.Println("pgmcompress start")
		defer func() {
			log.Printf("pgmcompress end. Took %.2f seconds\n", time.Since(start).Seconds())
		}()
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	client, err := pgmtools.NewClientIfNeeded(inputPath, outputFolder)
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(client, inputPath, outputFolder, name, target, verbose, histogram); err != nil {
		log.Fatalln(err)
	}
}

// parseArgs reads "bit [name] [r]". A missing bit is errUsage; r=0 (the
// default) selects a bit count, anything else a literal max value.
func parseArgs(args []string) (pgm.Target, string, error) {
	if len(args) < 1 {
		return pgm.Target{}, "", errUsage
	}

	bits, err := strconv.Atoi(args[0])
	if err != nil {
		return pgm.Target{}, "", fmt.Errorf("bit: %w", err)
	}

	name := "img"
	if len(args) > 1 {
		name = args[1]
	}

	literal := 0
	if len(args) > 2 {
		if literal, err = strconv.Atoi(args[2]); err != nil {
			return pgm.Target{}, "", fmt.Errorf("r: %w", err)
		}
	}

	target, err := pgm.NewTarget(bits, pgm.SelectorFromFlag(literal))
	if err != nil {
		return pgm.Target{}, "", err
	}

	return target, name, nil
}

func run(client *storage.Client, inputPath, outputFolder, name string, target pgm.Target, verbose, histogram bool) error {
	var src io.Reader = os.Stdin
	srcName := "stdin"
	if inputPath != "" {
		f, _, err := pgmtools.MaybeOpenFromGoogleStorage(inputPath, client)
		if err != nil {
			return err
		}
		defer f.Close()

		src, srcName = f, inputPath
	}

	var dst io.Writer = os.Stdout
	var out *pgmtools.Output
	outPath := ""
	if outputFolder != "" {
		outPath = pgmtools.JoinPath(outputFolder, pgm.OutputName(name, target.Value))

		var err error
		out, err = pgmtools.MaybeCreateOnGoogleStorage(outPath, client)
		if err != nil {
			return err
		}

		dst = out
	}

	rescaler := pgm.Rescaler{Target: target, KeepValues: histogram}
	summary, err := rescaler.Run(dst, src)
	if err != nil {
		if out != nil {
			if abortErr := out.Abort(); abortErr != nil {
				log.Println(abortErr)
			}
		}
		return fmt.Errorf("%s: %w", srcName, err)
	}

	if out != nil {
		if err := out.Close(); err != nil {
			return fmt.Errorf("%s: %w", outPath, err)
		}
	}

	if verbose {
		log.Printf("Input %s (%s): %s\n", srcName, summary.In, summary.InStats)
		log.Printf("Output %s: %s\n", summary.Out, summary.OutStats)
		if outPath != "" {
			log.Println("Wrote", outPath)
		}
	}

	if histogram {
		if err := summary.OutStats.FprintHistogram(os.Stderr, 16, 60); err != nil {
			return err
		}
	}

	return nil
}
