// internal/report/report.go
// Package report renders evaluated statistics as a styled table, JSON, or
// plain key=value lines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/gostats/stats"
)

// Undefined is printed in place of a statistic that has no value.
const Undefined = "undefined"

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatPlain}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls rendering. A negative Precision prints the shortest
// representation that round-trips.
type Options struct {
	Format    Format
	Precision int
}

// Row is the set of results computed for one series. Series may be empty
// when only a single anonymous sequence was evaluated.
type Row struct {
	Series  string
	Count   int
	Results []stats.Result
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	undefStyle  = cellStyle.Foreground(lipgloss.Color("244")).Italic(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

// FormatValue renders a single result with the given precision.
func FormatValue(r stats.Result, precision int) string {
	if !r.Defined {
		return Undefined
	}
	if precision < 0 {
		return strconv.FormatFloat(r.Value, 'g', -1, 64)
	}
	return strconv.FormatFloat(r.Value, 'f', precision, 64)
}

// Render writes rows to w in the requested format.
func Render(w io.Writer, rows []Row, opts Options) error {
	switch opts.Format {
	case FormatTable, "":
		_, err := fmt.Fprintln(w, Table(rows, opts.Precision))
		return err
	case FormatJSON:
		return renderJSON(w, rows)
	case FormatPlain:
		return renderPlain(w, rows, opts.Precision)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// Table builds the lipgloss table for rows. The statistic columns are taken
// from the first row.
func Table(rows []Row, precision int) string {
	headers := []string{"series", "n"}
	if len(rows) > 0 {
		for _, r := range rows[0].Results {
			headers = append(headers, r.Name)
		}
	}

	undefined := map[[2]int]bool{}
	data := make([][]string, 0, len(rows))
	for i, row := range rows {
		name := row.Series
		if name == "" {
			name = "-"
		}
		cells := []string{name, strconv.Itoa(row.Count)}
		for j, r := range row.Results {
			if !r.Defined {
				undefined[[2]int{i, j + 2}] = true
			}
			cells = append(cells, FormatValue(r, precision))
		}
		data = append(data, cells)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case undefined[[2]int{row, col}]:
				return undefStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

// jsonResult.Value is nil for undefined statistics, a string for NaN and
// infinities, and a float64 otherwise.
type jsonResult struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type jsonRow struct {
	Series  string       `json:"series,omitempty"`
	Count   int          `json:"count"`
	Results []jsonResult `json:"results"`
}

// renderJSON encodes undefined statistics as null so they cannot be
// mistaken for zero.
func renderJSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, 0, len(rows))
	for _, row := range rows {
		jr := jsonRow{Series: row.Series, Count: row.Count, Results: make([]jsonResult, 0, len(row.Results))}
		for _, r := range row.Results {
			res := jsonResult{Name: r.Name}
			switch {
			case !r.Defined:
			case math.IsNaN(r.Value) || math.IsInf(r.Value, 0):
				res.Value = strconv.FormatFloat(r.Value, 'g', -1, 64)
			default:
				res.Value = r.Value
			}
			jr.Results = append(jr.Results, res)
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("could not encode results: %w", err)
	}
	return nil
}

func renderPlain(w io.Writer, rows []Row, precision int) error {
	for _, row := range rows {
		prefix := ""
		if row.Series != "" {
			prefix = row.Series + "."
		}
		for _, r := range row.Results {
			if _, err := fmt.Fprintf(w, "%s%s=%s\n", prefix, r.Name, FormatValue(r, precision)); err != nil {
				return err
			}
		}
	}
	return nil
}
