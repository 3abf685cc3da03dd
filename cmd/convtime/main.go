// convtime prints a duration given in seconds as hours, minutes and seconds,
// e.g. "convtime 3725.25" prints "1 2 5.25".
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/carbocation/pgmtools/results"
)

var errUsage = errors.New("usage")

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stdout, "Usage: %s secs\n"+
			"Prints the amount of hours, minutes and seconds (up until the decimal case).\n", os.Args[0])
	}
}

func main() {
	flag.Parse()

	secs, err := parseArgs(flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(1)
	} else if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(format(secs))
}

// parseArgs reads the seconds from the first argument; the rest are ignored.
func parseArgs(args []string) (float64, error) {
	if len(args) < 1 {
		return 0, errUsage
	}

	secs, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("secs: %w", err)
	}

	return secs, nil
}

func format(secs float64) string {
	h, m, s := results.SplitSeconds(secs)
	return fmt.Sprintf("%d %d %.2f", h, m, s)
}
