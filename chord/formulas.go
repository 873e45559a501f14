package chord

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordtone/model"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFormula = errors.New("invalid formula")

type formulaFile struct {
	Formulas model.Formulas `yaml:"formulas"`
}

// LoadFormulas reads extra chord types from YAML:
//
//	formulas:
//	  - name: Add9
//	    intervals: [0, 4, 7, 14]
func LoadFormulas(r io.Reader) (model.Formulas, error) {
	var f formulaFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Formulas{}, nil
		}
		return nil, fmt.Errorf("could not decode formulas: %w", err)
	}

	for _, formula := range f.Formulas {
		if err := ValidateFormula(formula); err != nil {
			return nil, err
		}
	}
	return f.Formulas, nil
}

func LoadFormulasFile(path string) (model.Formulas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open formulas file: %w", err)
	}
	defer f.Close()

	return LoadFormulas(f)
}

func ValidateFormula(formula model.Formula) error {
	if formula.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidFormula)
	}
	if len(formula.Intervals) == 0 || formula.Intervals[0] != 0 {
		return fmt.Errorf("%w: %q must start at interval 0", ErrInvalidFormula, formula.Name)
	}
	for _, interval := range formula.Intervals {
		if interval < 0 {
			return fmt.Errorf("%w: %q has negative interval %d", ErrInvalidFormula, formula.Name, interval)
		}
	}
	return nil
}

// TablesWithFormulas returns the default tables extended by the formulas
// in path. An empty path gives the defaults.
func TablesWithFormulas(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}
	extra, err := LoadFormulasFile(path)
	if err != nil {
		return tables, err
	}
	tables.Formulas = tables.Formulas.Merge(extra)
	return tables, nil
}
