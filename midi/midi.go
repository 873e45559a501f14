package midi

import (
	"github.com/jsphweid/chordtone/constants"
	"github.com/jsphweid/chordtone/model"
	"gitlab.com/gomidi/midi/v2"
)

var letterSemitones = map[string]int{
	"C": 0,
	"D": 2,
	"E": 4,
	"F": 5,
	"G": 7,
	"A": 9,
	"B": 11,
}

// Key is the MIDI key number of a staff position, with C4 = 60.
// B#4 is the key of C5 and Cb4 the key of B3.
func Key(pos model.StaffPosition) (midi.Note, bool) {
	semitone, ok := letterSemitones[pos.Letter]
	if !ok {
		return 0, false
	}

	switch pos.Accidental {
	case string(constants.Sharp):
		semitone++
	case string(constants.Flat):
		semitone--
	}

	key := (pos.Octave+1)*12 + semitone
	if key < 0 || key > 127 {
		return 0, false
	}
	return midi.Note(key), true
}

// Keys maps positions to key numbers, skipping any that fall off the
// MIDI range.
func Keys(positions []model.StaffPosition) []int {
	res := make([]int, 0, len(positions))
	for _, pos := range positions {
		if key, ok := Key(pos); ok {
			res = append(res, int(key))
		}
	}
	return res
}

// Name is gomidi's name for the key of a position. Enharmonic spellings
// such as B#4 and C5 share a name.
func Name(pos model.StaffPosition) (string, bool) {
	key, ok := Key(pos)
	if !ok {
		return "", false
	}
	return key.String(), true
}
