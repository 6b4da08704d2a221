// stats/stats.go
// Package stats computes descriptive statistics over a slice of float64
// values. Every function in this package is pure: the input slice is never
// modified and no state is kept between calls.
//
// Results follow the comma-ok convention. A false second return value means
// the statistic is undefined for the given input; it is never encoded as 0
// or NaN.
package stats

import (
	"math"
	"slices"
)

// StatFn is the signature shared by every statistic in this package.
// If the statistic is undefined for xs, ok is false.
type StatFn func(xs []float64) (v float64, ok bool)

// Mean returns the arithmetic mean of xs.
// The mean of an empty slice is 0 by convention, so Mean always reports ok.
func Mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, true
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// StdDev returns the population variance of xs: the mean of the squared
// deviations from the mean, divided by n.
//
// Despite its name StdDev does not take the square root. Callers that want
// the standard deviation must apply math.Sqrt to the result. Slices with
// fewer than two values are undefined.
func StdDev(xs []float64) (float64, bool) {
	if len(xs) < 2 {
		return 0, false
	}
	m, _ := Mean(xs)
	sq := make([]float64, len(xs))
	for i, x := range xs {
		d := x - m
		sq[i] = d * d
	}
	return Mean(sq)
}

// Median returns the middle value of a sorted copy of xs. For an even number
// of values it returns the lower of the two central values rather than
// their average, so the result is always an element of xs.
//
// xs must not contain NaN. The median of an empty slice is undefined.
func Median(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return sorted[middle-1], true
	}
	return sorted[middle], true
}

// L2 returns the Euclidean norm of xs. The norm of an empty slice is 0.
func L2(xs []float64) (float64, bool) {
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum), true
}
