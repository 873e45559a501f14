//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/chordtone/chord"
	"github.com/jsphweid/chordtone/config"
	"github.com/jsphweid/chordtone/logger"
	"github.com/jsphweid/chordtone/model"
	"github.com/jsphweid/chordtone/server"
	"github.com/stretchr/testify/assert"
)

var ts *httptest.Server

func TestMain(m *testing.M) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		panic(err.Error())
	}
	log, _ := logger.NewTestLogger()
	engine := chord.New(log, chord.DefaultTables())
	ts = httptest.NewServer(server.NewRouter(log, cfg, []server.Route{
		server.NewHealthHandler(log),
		server.NewNotesHandler(),
		server.NewChordTypesHandler(engine),
		server.NewChordHandler(log, engine, cfg),
	}))

	exitVal := m.Run()

	ts.Close()
	os.Exit(exitVal)
}

func createChordReqBody(root string, chordType string) io.Reader {
	data, err := json.Marshal(model.ChordRequestBody{Root: root, Type: chordType})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postChord(t *testing.T, root string, chordType string) model.ChordResponse {
	resp, err := http.Post(ts.URL+"/chord", "application/json", createChordReqBody(root, chordType))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var chordResponse model.ChordResponse
	if err := json.NewDecoder(resp.Body).Decode(&chordResponse); err != nil {
		t.Fatal(err)
	}
	return chordResponse
}

func TestCMinorE2E(t *testing.T) {
	resp := postChord(t, "C", "Minor")

	assert := assert.New(t)
	assert.Equal(model.Notes{"C", "Eb", "G"}, resp.Notes)
	assert.Equal([]int{60, 63, 67}, resp.MidiKeys)
	assert.Equal(`{ \clef treble \time 4/4 <c' ees' g'>1 }`, resp.LilyPond)
}

func TestEveryChordTypeE2E(t *testing.T) {
	res, err := http.Get(ts.URL + "/chord-types")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var types model.ChordTypesResponse
	if err := json.NewDecoder(res.Body).Decode(&types); err != nil {
		t.Fatal(err)
	}

	for _, chordType := range types.ChordTypes {
		t.Run(chordType, func(t *testing.T) {
			resp := postChord(t, "G", chordType)

			assert := assert.New(t)
			assert.Equal("G", resp.Notes[0])
			assert.Len(resp.Staff, len(resp.Notes))
			assert.Len(resp.MidiKeys, len(resp.Notes))
		})
	}
}
