// internal/input/input.go
// Package input turns user-supplied text and dataset files into float64
// sequences for the stats package.
package input

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ErrInvalidValue is returned when a token cannot be read as a number.
var ErrInvalidValue = errors.New("invalid value")

// splitFields breaks s on commas, semicolons and whitespace, dropping empty
// fragments.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// ParseValues converts tokens into numbers. A single token may hold several
// values separated by commas or whitespace, so both `1 2 3` and `1,2,3`
// parse to the same sequence.
func ParseValues(tokens []string) ([]float64, error) {
	var out []float64
	pos := 0
	for _, tok := range tokens {
		for _, f := range splitFields(tok) {
			pos++
			v, err := cast.ToFloat64E(f)
			if err != nil {
				return nil, fmt.Errorf("%w %q at position %d", ErrInvalidValue, f, pos)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// ReadValues reads all of r and parses it with the rules of ParseValues.
func ReadValues(r io.Reader) ([]float64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read values: %w", err)
	}
	return ParseValues([]string{string(b)})
}
