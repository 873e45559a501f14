package lily

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordtone/constants"
	"github.com/jsphweid/chordtone/model"
	"github.com/jsphweid/chordtone/util"
)

type Elem interface {
	String() string
}

// Duration is a note value as a power of two: 0 is a whole note.
type Duration struct {
	DurationLog int
}

func (d *Duration) String() string {
	return fmt.Sprintf("%d", 1<<uint(d.DurationLog))
}

// Whole is the duration every chord is drawn with.
var Whole = Duration{DurationLog: 0}

// Pitch uses LilyPond's absolute octaves: Octave 0 is the octave of c'.
// Staff octaves start at 4, so Octave is never negative here.
type Pitch struct {
	Octave     int
	Notename   int
	Alteration int
}

func (p *Pitch) String() string {
	names := []string{"c", "d", "e", "f", "g", "a", "b"}
	altsuffix := map[int]string{-1: "es", 1: "is"}

	n := names[p.Notename] + altsuffix[p.Alteration]
	for i := 0; i <= p.Octave; i++ {
		n += "'"
	}
	return n
}

// FromStaff converts a staff position. Staff octave 4 is LilyPond octave 0.
func FromStaff(pos model.StaffPosition) (Pitch, bool) {
	notename := util.IndexOf(constants.LetterCycle[:], pos.Letter)
	if notename == -1 {
		return Pitch{}, false
	}

	var alteration int
	switch pos.Accidental {
	case string(constants.Sharp):
		alteration = 1
	case string(constants.Flat):
		alteration = -1
	}
	return Pitch{
		Octave:     pos.Octave - constants.ReferenceOctave,
		Notename:   notename,
		Alteration: alteration,
	}, true
}

// Chord is a single sonority. With no pitches it is a spacer.
type Chord struct {
	Pitch []Pitch
	Duration
}

func (c *Chord) String() string {
	d := &c.Duration
	pstr := "s"
	if len(c.Pitch) == 1 {
		pstr = c.Pitch[0].String()
	} else if len(c.Pitch) > 1 {
		pitches := []string{}
		for i := range c.Pitch {
			pitches = append(pitches, c.Pitch[i].String())
		}
		pstr = "<" + strings.Join(pitches, " ") + ">"
	}
	return pstr + d.String()
}

type Clef string

func (c Clef) String() string {
	return "\\clef " + string(c)
}

type Time string

func (t Time) String() string {
	return "\\time " + string(t)
}

type Seq struct {
	Elems []Elem
}

func (s *Seq) String() string {
	elts := []string{}
	for _, e := range s.Elems {
		elts = append(elts, e.String())
	}
	return fmt.Sprintf("{ %s }", strings.Join(elts, " "))
}

type Options struct {
	Clef string
	Time string
}

func (o Options) withDefaults() Options {
	if o.Clef == "" {
		o.Clef = constants.DefaultClef
	}
	if o.Time == "" {
		o.Time = constants.DefaultTimeSignature
	}
	return o
}

// Render draws one stave with a clef, a time signature and the positions
// as a single whole-note chord.
func Render(positions []model.StaffPosition, opts Options) string {
	opts = opts.withDefaults()

	c := &Chord{Duration: Whole}
	for _, pos := range positions {
		if p, ok := FromStaff(pos); ok {
			c.Pitch = append(c.Pitch, p)
		}
	}

	seq := &Seq{Elems: []Elem{Clef(opts.Clef), Time(opts.Time), c}}
	return seq.String()
}
