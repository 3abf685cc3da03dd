package results

import (
	"math"
	"testing"
)

func TestSplitSeconds(t *testing.T) {
	cases := []struct {
		secs    float64
		hours   int
		minutes int
		seconds float64
	}{
		{0, 0, 0, 0},
		{59.5, 0, 0, 59.5},
		{61, 0, 1, 1},
		{3600, 1, 0, 0},
		{3725.25, 1, 2, 5.25},
		{90061.5, 25, 1, 1.5},
	}

	for _, c := range cases {
		h, m, s := SplitSeconds(c.secs)
		if h != c.hours || m != c.minutes || math.Abs(s-c.seconds) > 1e-9 {
			t.Errorf("SplitSeconds(%v) = %d %d %v, expected %d %d %v", c.secs, h, m, s, c.hours, c.minutes, c.seconds)
		}
	}
}

func TestExtremes(t *testing.T) {
	min, max, err := Extremes([]float64{0.75, 3.5, -1.25, 2}, false)
	if err != nil {
		t.Fatal(err)
	}
	if min != -1.25 || max != 3.5 {
		t.Errorf("Expected -1.25 3.5, got %v %v", min, max)
	}

	min, max, err = Extremes([]float64{0.75, 3.5, -1.25, 2}, true)
	if err != nil {
		t.Fatal(err)
	}
	if min != -2 || max != 3 {
		t.Errorf("Expected floored -2 3, got %v %v", min, max)
	}

	if _, _, err := Extremes(nil, false); err == nil {
		t.Error("Expected an error for empty input")
	}
}

func TestParseFloats(t *testing.T) {
	vals, err := ParseFloats([]string{"1", "2.5", "-3e2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 3 || vals[2] != -300 {
		t.Errorf("Unexpected values %v", vals)
	}

	if _, err := ParseFloats([]string{"1", "abc"}); err == nil {
		t.Error("Expected an error for a non-numeric argument")
	}
}
