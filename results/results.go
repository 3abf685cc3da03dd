// Package results holds the small numeric helpers used to summarize
// experiment runs: wall-clock conversion and min/max extraction.
package results

import (
	"fmt"
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
)

// SplitSeconds breaks secs into whole hours, whole minutes within the hour,
// and the remaining seconds (fraction included).
func SplitSeconds(secs float64) (hours, minutes int, seconds float64) {
	whole := int(secs)

	hours = whole / 3600
	minutes = (whole % 3600) / 60
	seconds = secs - float64(hours*3600+minutes*60)

	return hours, minutes, seconds
}

// Extremes returns the lowest and highest of values. With floor, both are
// rounded down to the nearest integer.
func Extremes(values []float64, floor bool) (min, max float64, err error) {
	data := stats.Float64Data(values)

	if min, err = stats.Min(data); err != nil {
		return
	}
	if max, err = stats.Max(data); err != nil {
		return
	}

	if floor {
		min, max = math.Floor(min), math.Floor(max)
	}

	return min, max, nil
}

// ParseFloats parses every argument, naming the first one that is not a
// number.
func ParseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))

	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not a number: %w", i+1, arg, err)
		}

		out = append(out, v)
	}

	return out, nil
}
