package chord

import (
	"github.com/jsphweid/chordtone/constants"
	"github.com/jsphweid/chordtone/logger"
	"github.com/jsphweid/chordtone/model"
	"github.com/jsphweid/chordtone/util"
	"go.uber.org/zap"
)

// Engine spells chords from a fixed set of tables. It holds no mutable
// state, so one Engine can serve concurrent callers.
type Engine struct {
	log    *zap.SugaredLogger
	tables Tables
}

func New(log *zap.SugaredLogger, tables Tables) *Engine {
	return &Engine{log: logger.OrNop(log), tables: tables}
}

var defaultEngine = New(nil, DefaultTables())

// Notes spells a chord with the built-in tables.
func Notes(root model.Note, chordType string) model.Notes {
	return defaultEngine.Notes(root, chordType)
}

// Formulas returns a copy of the engine's formula table.
func (e *Engine) Formulas() model.Formulas {
	return e.tables.Formulas.Merge(nil)
}

// RootIndex resolves a root spelling to its chromatic index. Flat
// spellings resolve through the enharmonic table.
func (e *Engine) RootIndex(root model.Note) (int, bool) {
	if i := util.IndexOf(constants.AllNotes[:], root); i != -1 {
		return i, true
	}
	if alt, ok := e.tables.Enharmonics[root]; ok {
		if i := util.IndexOf(constants.AllNotes[:], alt); i != -1 {
			return i, true
		}
	}
	return -1, false
}

// Notes spells root and chordType into note names in formula order.
// An unknown root or chord type gives an empty result.
func (e *Engine) Notes(root model.Note, chordType string) model.Notes {
	res := model.Notes{}

	rootIndex, ok := e.RootIndex(root)
	if !ok {
		return res
	}
	formula, ok := e.tables.Formulas.Lookup(chordType)
	if !ok {
		return res
	}

	rootLetterIndex := util.IndexOf(constants.LetterCycle[:], util.BaseLetter(root))
	if rootLetterIndex == -1 {
		return res
	}

	for _, interval := range formula.Intervals {
		if interval == 0 {
			res = append(res, root)
			continue
		}
		expected := e.expectedLetter(rootLetterIndex, interval)
		raw := constants.AllNotes[util.Mod(rootIndex+interval, 12)]
		res = append(res, e.spell(raw, expected))
	}
	return res
}

func (e *Engine) expectedLetter(rootLetterIndex int, interval int) string {
	offset, ok := e.tables.Degrees[util.Mod(interval, 12)]
	if !ok {
		e.log.Warnw("missing degree offset for interval", "interval", interval)
		return constants.UnknownLetter
	}
	return constants.LetterCycle[(rootLetterIndex+offset)%len(constants.LetterCycle)]
}

// spell keeps raw when its letter is expected, otherwise swaps in the
// enharmonic alternative if that one has the expected letter.
func (e *Engine) spell(raw model.Note, expected string) model.Note {
	if util.BaseLetter(raw) == expected {
		return raw
	}
	if alt, ok := e.tables.Enharmonics[raw]; ok && util.BaseLetter(alt) == expected {
		return alt
	}
	return raw
}
