// getdelta prints the lowest and highest of the numbers given on the command
// line. With -floor, both are rounded down first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/pgmtools/results"
)

var errUsage = errors.New("usage")

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stdout, "Usage: %s [-floor] [p]...\n"+
			"Prints the lowest and highest p values.\n"+
			"Put -- before the values if the first one is negative.\n", os.Args[0])
	}
}

func main() {
	var floor bool

	flag.BoolVar(&floor, "floor", false, "Round the lowest and highest values down to integers.")
	flag.Parse()

	values, err := parseArgs(flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(1)
	} else if err != nil {
		log.Fatalln(err)
	}

	min, max, err := results.Extremes(values, floor)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%.2f %.2f\n", min, max)
}

// parseArgs needs at least two values to compare.
func parseArgs(args []string) ([]float64, error) {
	if len(args) < 2 {
		return nil, errUsage
	}

	return results.ParseFloats(args)
}
