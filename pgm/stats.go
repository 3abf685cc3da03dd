package pgm

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/runningvariance"
)

// Stats accumulates a summary of a pixel stream.
type Stats struct {
	runningvariance.RunningStat
	Min int
	Max int

	// Values is only filled in when the Stats was created with keepValues,
	// since it grows with the image.
	Values []float64
	keep   bool
}

func NewStats(keepValues bool) *Stats {
	return &Stats{
		RunningStat: *runningvariance.NewRunningStat(),
		keep:        keepValues,
	}
}

func (s *Stats) Push(px int) {
	s.RunningStat.Push(float64(px))

	if s.N == 1 {
		s.Min, s.Max = px, px
	} else if px < s.Min {
		s.Min = px
	} else if px > s.Max {
		s.Max = px
	}

	if s.keep {
		s.Values = append(s.Values, float64(px))
	}
}

func (s *Stats) String() string {
	if s.N == 0 {
		return "no pixels"
	}

	return fmt.Sprintf("%d pixels, min %d, max %d, mean %.4g, sd %.4g", s.N, s.Min, s.Max, s.Mean(), s.StandardDeviation())
}

// FprintHistogram draws an ASCII histogram of the kept values.
func (s *Stats) FprintHistogram(w io.Writer, bins, width int) error {
	if len(s.Values) == 0 {
		return fmt.Errorf("no pixel values were kept for the histogram")
	}

	hist := histogram.Hist(bins, s.Values)

	return histogram.Fprint(w, hist, histogram.Linear(width))
}

// Summary describes one rescale pass.
type Summary struct {
	In  Header
	Out Header

	InStats  *Stats
	OutStats *Stats
}
