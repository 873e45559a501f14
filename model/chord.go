package model

import "golang.org/x/exp/slices"

// Note is a spelled note name such as "C", "F#" or "Bb".
type Note = string

type Notes = []Note

// Formula is a chord type label and its semitone offsets from the root.
// Intervals keep their declared order; they are not sorted.
type Formula struct {
	Name      string `json:"name" yaml:"name"`
	Intervals []int  `json:"intervals" yaml:"intervals"`
}

func (f Formula) Clone() Formula {
	return Formula{Name: f.Name, Intervals: slices.Clone(f.Intervals)}
}

// Formulas is an ordered formula table. Order is the display order.
type Formulas []Formula

// Lookup finds a formula by its exact label.
func (f Formulas) Lookup(name string) (Formula, bool) {
	for _, formula := range f {
		if formula.Name == name {
			return formula, true
		}
	}
	return Formula{}, false
}

// Names lists the labels in display order.
func (f Formulas) Names() []string {
	names := make([]string, 0, len(f))
	for _, formula := range f {
		names = append(names, formula.Name)
	}
	return names
}

// Merge returns a new table where entries of other replace same-named
// entries in place and the rest are appended. Intervals are copied, so
// the result shares no memory with f or other.
func (f Formulas) Merge(other Formulas) Formulas {
	res := make(Formulas, 0, len(f)+len(other))
	for _, formula := range f {
		res = append(res, formula.Clone())
	}
	for _, formula := range other {
		formula = formula.Clone()
		replaced := false
		for i := range res {
			if res[i].Name == formula.Name {
				res[i] = formula
				replaced = true
				break
			}
		}
		if !replaced {
			res = append(res, formula)
		}
	}
	return res
}
