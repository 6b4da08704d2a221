// internal/suite/runner_test.go
package suite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/gostats/internal/input"
	"github.com/mwiater/gostats/stats"
)

func TestRun_PreservesSeriesOrder(t *testing.T) {
	cfg := Config{
		Series: []input.Series{
			{Name: "zeta", Values: []float64{1, 2, 3}},
			{Name: "alpha", Values: []float64{0, 4}},
			{Name: "empty"},
		},
		Stats: []string{"median", "stddev"},
	}
	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Reports, 3)
	assert.False(t, res.GeneratedAt.IsZero())
	assert.Equal(t, []string{"median", "stddev"}, res.Stats)

	assert.Equal(t, "zeta", res.Reports[0].Name)
	assert.Equal(t, 3, res.Reports[0].Count)
	assert.Equal(t, stats.Result{Name: "median", Value: 2, Defined: true}, res.Reports[0].Results[0])

	assert.Equal(t, "alpha", res.Reports[1].Name)
	assert.Equal(t, stats.Result{Name: "stddev", Value: 4, Defined: true}, res.Reports[1].Results[1])

	assert.Equal(t, "empty", res.Reports[2].Name)
	assert.False(t, res.Reports[2].Results[0].Defined)
	assert.False(t, res.Reports[2].Results[1].Defined)
}

func TestRun_DefaultsToAllStats(t *testing.T) {
	res, err := Run(context.Background(), Config{Series: []input.Series{{Name: "a", Values: []float64{1}}}})
	require.NoError(t, err)
	assert.Equal(t, stats.Names(), res.Stats)
	assert.Len(t, res.Reports[0].Results, len(stats.Names()))
}

func TestRun_Validation(t *testing.T) {
	_, err := Run(context.Background(), Config{})
	assert.Error(t, err)

	_, err = Run(context.Background(), Config{
		Series: []input.Series{{Name: "a"}},
		Stats:  []string{"kurtosis"},
	})
	assert.ErrorIs(t, err, stats.ErrUnknownStat)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{Series: []input.Series{{Name: "a", Values: []float64{1}}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Rows(t *testing.T) {
	res, err := Run(context.Background(), Config{Series: []input.Series{{Name: "a", Values: []float64{3}}}})
	require.NoError(t, err)
	rows := res.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Series)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, res.Reports[0].Results, rows[0].Results)
}
