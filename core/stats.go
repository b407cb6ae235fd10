package core

import "math"

// Round1 rounds to one decimal place, the precision every dashboard rate and
// average is reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SafeAverage averages the strictly positive entries of values, rounded to
// one decimal, and returns nil when nothing survives the filter. Zero is
// excluded deliberately: for these metrics a value of exactly 0 commonly
// means "not measured" (a repo with no releases yet), and including it would
// bias the average toward unmeasured repositories.
func SafeAverage(values []float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := Round1(sum / float64(n))
	return &avg
}

// SafeAveragePtr drops nil entries before averaging, preserving the
// distinction between "unknown" and "zero" for nullable per-repo metrics.
func SafeAveragePtr(values []*float64) *float64 {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			present = append(present, *v)
		}
	}
	return SafeAverage(present)
}

// Percent returns part/total as a percentage rounded to one decimal, or 0
// when the denominator is empty.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}
