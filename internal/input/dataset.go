// internal/input/dataset.go
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrEmptyDataset is returned when a dataset file holds no series.
var ErrEmptyDataset = errors.New("dataset must contain at least one series")

// Series is a named sequence of values.
type Series struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// Dataset is the on-disk shape read by LoadDataset.
type Dataset struct {
	Series []Series `json:"series" yaml:"series"`
}

// LoadDataset reads a JSON or YAML dataset file. The format is chosen from
// the file extension; anything other than .yaml or .yml is read as JSON.
func LoadDataset(path string) (Dataset, error) {
	var ds Dataset
	b, err := os.ReadFile(path)
	if err != nil {
		return ds, fmt.Errorf("could not read dataset file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &ds); err != nil {
			return ds, fmt.Errorf("could not parse dataset YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &ds); err != nil {
			return ds, fmt.Errorf("could not parse dataset JSON: %w", err)
		}
	}

	if err := ds.validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func (ds Dataset) validate() error {
	if len(ds.Series) == 0 {
		return ErrEmptyDataset
	}
	for i, s := range ds.Series {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("series %d has no name", i)
		}
	}
	return nil
}
