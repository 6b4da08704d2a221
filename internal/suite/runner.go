// internal/suite/runner.go
// Package: suite
package suite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mwiater/gostats/internal/report"
	"github.com/mwiater/gostats/stats"
)

// Run evaluates every series in cfg. It checks ctx between series and
// returns ctx's error if the run is cancelled part way.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if len(cfg.Series) == 0 {
		return Result{}, errors.New("at least one series is required")
	}
	names := cfg.Stats
	if len(names) == 0 {
		names = stats.Names()
	}
	if err := stats.Validate(names...); err != nil {
		return Result{}, err
	}

	reports := make([]SeriesReport, 0, len(cfg.Series))
	for _, s := range cfg.Series {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("suite cancelled before %q: %w", s.Name, err)
		}
		res, err := stats.Apply(s.Values, names...)
		if err != nil {
			return Result{}, fmt.Errorf("series %q: %w", s.Name, err)
		}
		reports = append(reports, SeriesReport{Name: s.Name, Count: len(s.Values), Results: res})
	}

	return buildResult(names, reports), nil
}

// buildResult packs everything with a timestamp.
func buildResult(names []string, reports []SeriesReport) Result {
	return Result{
		Stats:       names,
		Reports:     reports,
		GeneratedAt: time.Now(),
	}
}

// Rows converts the reports for rendering.
func (r Result) Rows() []report.Row {
	rows := make([]report.Row, len(r.Reports))
	for i, sr := range r.Reports {
		rows[i] = report.Row{Series: sr.Name, Count: sr.Count, Results: sr.Results}
	}
	return rows
}
