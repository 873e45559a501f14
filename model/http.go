package model

type ChordRequestBody struct {
	Root string `json:"root"`
	Type string `json:"type"`
}

type StaffKey struct {
	StaffPosition
	Key      string `json:"key"`
	MidiName string `json:"midi_name,omitempty"`
}

type ChordResponse struct {
	Root     string     `json:"root"`
	Type     string     `json:"type"`
	Notes    Notes      `json:"notes"`
	Staff    []StaffKey `json:"staff"`
	MidiKeys []int      `json:"midi_keys"`
	LilyPond string     `json:"lilypond"`
}

type NotesResponse struct {
	Notes []string `json:"notes"`
}

type ChordTypesResponse struct {
	ChordTypes []string `json:"chord_types"`
}

type HealthResponse struct {
	Server bool `json:"server"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
