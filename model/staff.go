package model

import (
	"fmt"
	"strings"
)

// StaffPosition is where a spelled note goes on a stave.
// Accidental is "#", "b" or empty.
type StaffPosition struct {
	Letter     string `json:"letter"`
	Octave     int    `json:"octave"`
	Accidental string `json:"accidental,omitempty"`
}

// Key is the renderer key for the position, e.g. "c/4".
func (p StaffPosition) Key() string {
	return fmt.Sprintf("%s/%d", strings.ToLower(p.Letter), p.Octave)
}
