package staff

import (
	"github.com/jsphweid/chordtone/constants"
	"github.com/jsphweid/chordtone/model"
	"github.com/jsphweid/chordtone/util"
)

// Infer places spelled notes on the staff as one stacked chord. The first
// note sits in the reference octave and the octave goes up each time the
// letter sequence wraps past B.
func Infer(notes model.Notes) []model.StaffPosition {
	res := make([]model.StaffPosition, 0, len(notes))

	octave := constants.ReferenceOctave
	prevLetterIndex := -1
	for _, note := range notes {
		letter := util.BaseLetter(note)
		letterIndex := util.IndexOf(constants.LetterCycle[:], letter)
		if letterIndex == -1 {
			// not a note name
			continue
		}

		if prevLetterIndex != -1 && letterIndex < prevLetterIndex {
			octave++
		}

		res = append(res, model.StaffPosition{
			Letter:     letter,
			Octave:     octave,
			Accidental: accidental(note),
		})
		prevLetterIndex = letterIndex
	}
	return res
}

func accidental(note model.Note) string {
	if len(note) < 2 {
		return ""
	}
	switch note[1] {
	case constants.Sharp, constants.Flat:
		return string(note[1])
	}
	return ""
}
