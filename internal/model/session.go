package model

import "time"

// SessionSelection carries the form-wide fields applied across all rows:
// inspector, station, working date, and the currently selected row. It is
// treated as immutable per update; mutating operations take a value and
// return the state they acted on.
type SessionSelection struct {
	Inspector  string
	Station    string
	Date       time.Time
	CurrentSTT string
}

// NewSessionSelection returns a selection with the date defaulted to now,
// matching template-load behavior.
func NewSessionSelection() SessionSelection {
	return SessionSelection{Date: time.Now()}
}

// DisplayDate renders the working date the way it appears in row cells.
func (s SessionSelection) DisplayDate() string {
	return s.Date.Format(DisplayDateLayout)
}

// Draft is the serialized snapshot held in the single persistence slot.
// Field names match the stored JSON document; there is no schema versioning.
type Draft struct {
	Rows      []Row     `json:"data"`
	Inspector string    `json:"inspector"`
	Station   string    `json:"station,omitempty"`
	Date      time.Time `json:"date"`
}
