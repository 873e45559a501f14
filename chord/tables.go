package chord

import (
	"github.com/jsphweid/chordtone/constants"
	"github.com/jsphweid/chordtone/model"
)

// Tables is the read-only data the engine spells from.
type Tables struct {
	Formulas    model.Formulas
	Enharmonics map[string]string
	Degrees     map[int]int
}

// DefaultFormulas returns the built-in chord types in display order.
func DefaultFormulas() model.Formulas {
	return model.Formulas{
		{Name: "Major", Intervals: []int{0, 4, 7}},
		{Name: "Minor", Intervals: []int{0, 3, 7}},
		{Name: "Major 7th", Intervals: []int{0, 4, 7, 11}},
		{Name: "Minor 7th", Intervals: []int{0, 3, 7, 10}},
		{Name: "Dominant 7th", Intervals: []int{0, 4, 7, 10}},
		{Name: "Sus2", Intervals: []int{0, 2, 7}},
		{Name: "Sus4", Intervals: []int{0, 5, 7}},
		{Name: "Diminished", Intervals: []int{0, 3, 6}},
		{Name: "9th", Intervals: []int{0, 4, 7, 10, 14}},
		{Name: "Major 9th", Intervals: []int{0, 4, 7, 11, 14}},
		{Name: "Minor 9th", Intervals: []int{0, 3, 7, 10, 14}},
		{Name: "11th", Intervals: []int{0, 4, 7, 10, 14, 17}},
		{Name: "13th", Intervals: []int{0, 4, 7, 10, 14, 17, 21}},
	}
}

// DefaultTables returns fresh copies of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Formulas:    DefaultFormulas(),
		Enharmonics: constants.EnharmonicNotes(),
		Degrees:     constants.IntervalToDegreeOffset(),
	}
}
