// stats/stats_test.go
package stats

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type want struct {
	v  float64
	ok bool
}

func check(t *testing.T, fn StatFn, xs []float64, w want) {
	t.Helper()
	v, ok := fn(xs)
	require.Equal(t, w.ok, ok, "defined for %v", xs)
	if w.ok {
		assert.Equal(t, w.v, v, "value for %v", xs)
	}
}

func TestMean(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		want want
	}{
		{"nil", nil, want{0, true}},
		{"empty", []float64{}, want{0, true}},
		{"symmetric", []float64{-1, 1}, want{0, true}},
		{"three", []float64{2, 4, 6}, want{4, true}},
		{"single", []float64{7.5}, want{7.5, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) { check(t, Mean, tc.xs, tc.want) })
	}
}

func TestMean_TimesLenIsSum(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 1; n <= 64; n++ {
		xs := randomValues(r, n)
		m, ok := Mean(xs)
		require.True(t, ok)
		assert.InDelta(t, floats.Sum(xs), m*float64(n), 1e-9)
	}
}

func TestStdDev(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		want want
	}{
		{"empty", []float64{}, want{0, false}},
		{"single", []float64{1}, want{0, false}},
		{"equal pair", []float64{1, 1}, want{0, true}},
		{"pair", []float64{0, 2}, want{1, true}},
		// Variance is 4 here; the standard deviation would be 2.
		{"variance not sqrt", []float64{0, 4}, want{4, true}},
		{"four", []float64{2, 4, 4, 4, 5, 5, 7, 9}, want{4, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) { check(t, StdDev, tc.xs, tc.want) })
	}
}

func TestStdDev_ConstantSequenceIsZero(t *testing.T) {
	for _, v := range []float64{0, 1, -3.25, 1.5, 1024, -0.125} {
		for n := 2; n <= 8; n++ {
			xs := make([]float64, n)
			for i := range xs {
				xs[i] = v
			}
			got, ok := StdDev(xs)
			require.True(t, ok)
			assert.Zero(t, got, "v=%v n=%d", v, n)
		}
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		want want
	}{
		{"empty", []float64{}, want{0, false}},
		{"nil", nil, want{0, false}},
		{"single zero", []float64{0}, want{0, true}},
		{"single", []float64{42}, want{42, true}},
		{"even lower middle", []float64{0, 0.5, -1, 1}, want{0, true}},
		{"odd", []float64{1, 2, 3}, want{2, true}},
		{"odd unsorted", []float64{9, -2, 5, 3, 3}, want{3, true}},
		{"pair", []float64{10, 20}, want{10, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) { check(t, Median, tc.xs, tc.want) })
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	xs := []float64{3, -1, 2.5, 0, 8, -7}
	before := slices.Clone(xs)
	_, ok := Median(xs)
	require.True(t, ok)
	assert.Equal(t, before, xs)
}

func TestMedian_ReturnsAnElement(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for n := 1; n <= 50; n++ {
		xs := randomValues(r, n)
		m, ok := Median(xs)
		require.True(t, ok)
		assert.Contains(t, xs, m)
	}
}

func TestL2(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		want want
	}{
		{"empty", []float64{}, want{0, true}},
		{"three four five", []float64{-3, 4}, want{5, true}},
		{"single", []float64{1}, want{1, true}},
		{"negative single", []float64{-2}, want{2, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) { check(t, L2, tc.xs, tc.want) })
	}
}

func TestAgreesWithGonum(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for n := 2; n <= 100; n += 7 {
		xs := randomValues(r, n)

		m, _ := Mean(xs)
		assert.InDelta(t, stat.Mean(xs, nil), m, 1e-9)

		v, ok := StdDev(xs)
		require.True(t, ok)
		assert.InDelta(t, stat.PopVariance(xs, nil), v, 1e-6)

		l, _ := L2(xs)
		assert.InDelta(t, floats.Norm(xs, 2), l, 1e-9)
	}
}

func TestNaNPropagates(t *testing.T) {
	xs := []float64{1, math.NaN(), 3}
	for name, fn := range map[string]StatFn{"mean": Mean, "stddev": StdDev, "l2": L2} {
		v, ok := fn(xs)
		assert.True(t, ok, name)
		assert.True(t, math.IsNaN(v), name)
	}
}

func TestPure(t *testing.T) {
	xs := []float64{4, 1, 3, 2}
	before := slices.Clone(xs)
	for _, fn := range []StatFn{Mean, StdDev, Median, L2} {
		a, aok := fn(xs)
		b, bok := fn(xs)
		assert.Equal(t, aok, bok)
		assert.Equal(t, a, b)
	}
	assert.Equal(t, before, xs)
}

func randomValues(r *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64()*200 - 100
	}
	return xs
}
