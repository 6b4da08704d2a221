// stats/registry.go
package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStat is returned when a statistic name is not registered.
var ErrUnknownStat = errors.New("unknown statistic")

// entry pairs a statistic with a short, human-readable description.
type entry struct {
	name string
	fn   StatFn
	desc string
}

// registry holds the statistics in canonical order. It is never modified.
var registry = []entry{
	{name: "mean", fn: Mean, desc: "Arithmetic mean (0 for empty input)"},
	{name: "stddev", fn: StdDev, desc: "Population variance, no square root (undefined for fewer than 2 values)"},
	{name: "median", fn: Median, desc: "Middle value, lower of the two central values on ties (undefined for empty input)"},
	{name: "l2", fn: L2, desc: "Euclidean norm (0 for empty input)"},
}

// Result is the outcome of evaluating one named statistic.
// Value is only meaningful when Defined is true.
type Result struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// Names returns the registered statistic names in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

func find(name string) (entry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return entry{}, false
}

// Lookup returns the statistic registered under name. Matching ignores case
// and surrounding whitespace.
func Lookup(name string) (StatFn, bool) {
	e, ok := find(name)
	return e.fn, ok
}

// Describe returns the one-line description of a statistic, or an empty
// string if name is not registered.
func Describe(name string) string {
	e, _ := find(name)
	return e.desc
}

// Validate checks that every name is registered.
func Validate(names ...string) error {
	for _, n := range names {
		if _, ok := find(n); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStat, n)
		}
	}
	return nil
}

// Apply evaluates the named statistics over xs in the order given. With no
// names it evaluates every registered statistic in canonical order.
func Apply(xs []float64, names ...string) ([]Result, error) {
	if len(names) == 0 {
		names = Names()
	}
	if err := Validate(names...); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(names))
	for _, n := range names {
		e, _ := find(n)
		v, ok := e.fn(xs)
		out = append(out, Result{Name: e.name, Value: v, Defined: ok})
	}
	return out, nil
}
