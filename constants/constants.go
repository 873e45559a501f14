package constants

// AllNotes is the chromatic scale from C, spelled with sharps.
// A pitch class index is its position here.
var AllNotes = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// LetterCycle is the diatonic letter order used to count degrees.
var LetterCycle = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Sharp and Flat are the only accidental markers a spelling carries.
const (
	Sharp = '#'
	Flat  = 'b'
)

// ReferenceOctave is where the first note of a chord sits on the staff.
const ReferenceOctave = 4

// UnknownLetter never matches a base letter.
const UnknownLetter = "?"

// DefaultClef and DefaultTimeSignature describe the single stave a chord is drawn on.
const (
	DefaultClef          = "treble"
	DefaultTimeSignature = "4/4"
)

// EnharmonicNotes maps a spelling to its alternate spelling.
// It is not symmetric: C maps to B# but B# maps back to C.
func EnharmonicNotes() map[string]string {
	return map[string]string{
		"C#": "Db",
		"D#": "Eb",
		"F#": "Gb",
		"G#": "Ab",
		"A#": "Bb",
		"B#": "C",
		"Cb": "B",
		"Db": "C#",
		"Eb": "D#",
		"Gb": "F#",
		"Ab": "G#",
		"Bb": "A#",
		"C":  "B#",
	}
}

// IntervalToDegreeOffset maps a semitone interval (0-11) to how many
// letters up the cycle it lands. Minor and major thirds both map to 2.
func IntervalToDegreeOffset() map[int]int {
	return map[int]int{
		0:  0,
		1:  1,
		2:  1,
		3:  2,
		4:  2,
		5:  3,
		6:  3,
		7:  4,
		8:  4,
		9:  5,
		10: 6,
		11: 6,
	}
}
