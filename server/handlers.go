package server

import (
	"encoding/json"
	"net/http"

	"github.com/jsphweid/chordtone/chord"
	"github.com/jsphweid/chordtone/config"
	"github.com/jsphweid/chordtone/constants"
	"github.com/jsphweid/chordtone/lily"
	"github.com/jsphweid/chordtone/midi"
	"github.com/jsphweid/chordtone/model"
	"github.com/jsphweid/chordtone/staff"
	"go.uber.org/zap"
)

type HealthHandler struct {
	log *zap.SugaredLogger
}

func NewHealthHandler(log *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{log: log}
}

func (*HealthHandler) Pattern() string { return "/health" }
func (*HealthHandler) Methods() []string { return []string{http.MethodGet} }

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("health check")
	writeJSON(w, http.StatusOK, model.HealthResponse{Server: true})
}

// NotesHandler lists the roots a chord can be built on.
type NotesHandler struct{}

func NewNotesHandler() *NotesHandler {
	return &NotesHandler{}
}

func (*NotesHandler) Pattern() string { return "/notes" }
func (*NotesHandler) Methods() []string { return []string{http.MethodGet} }

func (*NotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NotesResponse{Notes: constants.AllNotes[:]})
}

type ChordTypesHandler struct {
	engine *chord.Engine
}

func NewChordTypesHandler(engine *chord.Engine) *ChordTypesHandler {
	return &ChordTypesHandler{engine: engine}
}

func (*ChordTypesHandler) Pattern() string { return "/chord-types" }
func (*ChordTypesHandler) Methods() []string { return []string{http.MethodGet} }

func (h *ChordTypesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ChordTypesResponse{ChordTypes: h.engine.Formulas().Names()})
}

// ChordHandler spells a chord and lays it out for a staff renderer.
// GET reads root and type from the query, POST from a JSON body.
type ChordHandler struct {
	log    *zap.SugaredLogger
	engine *chord.Engine
	opts   lily.Options
}

func NewChordHandler(log *zap.SugaredLogger, engine *chord.Engine, cfg config.Config) *ChordHandler {
	return &ChordHandler{
		log:    log,
		engine: engine,
		opts:   lily.Options{Clef: cfg.Clef, Time: cfg.TimeSignature},
	}
}

func (*ChordHandler) Pattern() string { return "/chord" }
func (*ChordHandler) Methods() []string { return []string{http.MethodGet, http.MethodPost} }

func (h *ChordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req model.ChordRequestBody
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
			return
		}
	} else {
		q := r.URL.Query()
		req.Root = q.Get("root")
		req.Type = q.Get("type")
	}

	resp := Describe(h.engine, h.opts, req.Root, req.Type)
	h.log.Infow("chord", "root", req.Root, "type", req.Type, "notes", resp.Notes)
	writeJSON(w, http.StatusOK, resp)
}

// Describe runs the whole pipeline for one chord. An unknown root or
// type gives a response with no notes.
func Describe(engine *chord.Engine, opts lily.Options, root string, chordType string) model.ChordResponse {
	notes := engine.Notes(root, chordType)
	positions := staff.Infer(notes)

	keys := make([]model.StaffKey, 0, len(positions))
	for _, pos := range positions {
		name, _ := midi.Name(pos)
		keys = append(keys, model.StaffKey{StaffPosition: pos, Key: pos.Key(), MidiName: name})
	}

	return model.ChordResponse{
		Root:     root,
		Type:     chordType,
		Notes:    notes,
		Staff:    keys,
		MidiKeys: midi.Keys(positions),
		LilyPond: lily.Render(positions, opts),
	}
}
