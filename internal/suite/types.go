// internal/suite/types.go
// Package: suite
package suite

import (
	"time"

	"github.com/mwiater/gostats/internal/input"
	"github.com/mwiater/gostats/stats"
)

// Config configures a batch run.
type Config struct {
	// Series to evaluate, in report order.
	Series []input.Series `json:"series"`

	// Statistic names to compute for every series. Empty means all of them.
	Stats []string `json:"stats"`
}

// SeriesReport holds the results for one series.
type SeriesReport struct {
	Name    string         `json:"name"`
	Count   int            `json:"count"`
	Results []stats.Result `json:"results"`
}

// Result is the outcome of a whole run.
type Result struct {
	Stats       []string       `json:"stats"`
	Reports     []SeriesReport `json:"reports"`
	GeneratedAt time.Time      `json:"generated_at"`
}
