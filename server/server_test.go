package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jsphweid/chordtone/chord"
	"github.com/jsphweid/chordtone/config"
	"github.com/jsphweid/chordtone/logger"
	"github.com/jsphweid/chordtone/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

func newTestRouter() http.Handler {
	log, _ := logger.NewTestLogger()
	cfg := config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
		Clef:           "treble",
		TimeSignature:  "4/4",
	}
	engine := chord.New(log, chord.DefaultTables())
	return NewRouter(log, cfg, []Route{
		NewHealthHandler(log),
		NewNotesHandler(),
		NewChordTypesHandler(engine),
		NewChordHandler(log, engine, cfg),
	})
}

func serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)
	return w
}

func decodeChord(t *testing.T, w *httptest.ResponseRecorder) model.ChordResponse {
	var resp model.ChordResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

func TestGetChord(t *testing.T) {
	q := url.Values{"root": {"C"}, "type": {"Dominant 7th"}}
	w := serve(httptest.NewRequest(http.MethodGet, "/chord?"+q.Encode(), nil))
	resp := decodeChord(t, w)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("application/json", w.Header().Get("Content-Type"))
	assert.Equal(model.Notes{"C", "E", "G", "Bb"}, resp.Notes)
	assert.Equal([]int{60, 64, 67, 70}, resp.MidiKeys)
	assert.Equal(`{ \clef treble \time 4/4 <c' e' g' bes'>1 }`, resp.LilyPond)
	assert.Equal(model.StaffKey{
		StaffPosition: model.StaffPosition{Letter: "B", Octave: 4, Accidental: "b"},
		Key:           "b/4",
		MidiName:      midi.Note(70).String(),
	}, resp.Staff[3])
}

func TestPostChord(t *testing.T) {
	body := bytes.NewReader([]byte(`{"root":"A","type":"Major"}`))
	w := serve(httptest.NewRequest(http.MethodPost, "/chord", body))
	resp := decodeChord(t, w)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("A", resp.Root)
	assert.Equal("Major", resp.Type)
	assert.Equal(model.Notes{"A", "C#", "E"}, resp.Notes)
	assert.Equal("c/5", resp.Staff[1].Key)
	assert.Equal("#", resp.Staff[1].Accidental)
}

func TestUnknownChordIsEmpty(t *testing.T) {
	q := url.Values{"root": {"H"}, "type": {"Major"}}
	w := serve(httptest.NewRequest(http.MethodGet, "/chord?"+q.Encode(), nil))
	resp := decodeChord(t, w)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Empty(resp.Notes)
	assert.Empty(resp.Staff)
	assert.Empty(resp.MidiKeys)
	assert.Contains(w.Body.String(), `"notes":[]`)
}

func TestBadBody(t *testing.T) {
	w := serve(httptest.NewRequest(http.MethodPost, "/chord", strings.NewReader("{")))

	var resp model.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, w.Code)
	assert.Contains(resp.Error, "could not decode request body")
}

func TestChordTypes(t *testing.T) {
	w := serve(httptest.NewRequest(http.MethodGet, "/chord-types", nil))

	var resp model.ChordTypesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(chord.DefaultFormulas().Names(), resp.ChordTypes)
	assert.Equal("Major", resp.ChordTypes[0])
}

func TestNotes(t *testing.T) {
	w := serve(httptest.NewRequest(http.MethodGet, "/notes", nil))

	var resp model.NotesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(resp.Notes, 12)
	assert.Equal("C#", resp.Notes[1])
}

func TestHealth(t *testing.T) {
	w := serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.JSONEq(`{"server":true}`, w.Body.String())
}

func TestWrongMethod(t *testing.T) {
	w := serve(httptest.NewRequest(http.MethodDelete, "/chord", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRequestID(t *testing.T) {
	w := serve(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = serve(req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
