// Package model holds the passive symbolic containers: melodies,
// chords, parts, and whole compositions.
package model

import "github.com/calyptra/aleamidi/util"

// Melody is an ordered line of notes with parallel rhythms and
// dynamics. The three sequences are equal length at every observable
// point; bar quantization consumes them front to back.
//
// Rhythms are symbolic quarter-note units until scaled to a tempo,
// after which they are seconds.
type Melody struct {
	Tempo      float64
	Instrument string

	Notes    []string
	Rhythms  []float64
	Dynamics []int

	// provenance
	Info        []string
	PCS         []int
	SourceData  []int
	SourceNotes []string
}

// NewMelody returns an empty melody with tempo and instrument set.
func NewMelody(tempo float64, instrument string) *Melody {
	return &Melody{Tempo: tempo, Instrument: instrument}
}

// Len returns the number of notes in the melody.
func (m *Melody) Len() int { return len(m.Notes) }

// IsEmpty reports whether all three parallel sequences are drained.
func (m *Melody) IsEmpty() bool {
	return len(m.Notes) == 0 && len(m.Rhythms) == 0 && len(m.Dynamics) == 0
}

// Duration returns the sum of the melody's rhythms. The result is in
// seconds only if the rhythms have already been scaled to a tempo.
func (m *Melody) Duration() float64 {
	return util.Sum(m.Rhythms)
}

// Copy returns a deep copy. Template melodies reused across voices
// must be copied so no two parts alias the same backing arrays.
func (m *Melody) Copy() *Melody {
	c := *m
	c.Notes = append([]string(nil), m.Notes...)
	c.Rhythms = append([]float64(nil), m.Rhythms...)
	c.Dynamics = append([]int(nil), m.Dynamics...)
	c.Info = append([]string(nil), m.Info...)
	c.PCS = append([]int(nil), m.PCS...)
	c.SourceData = append([]int(nil), m.SourceData...)
	c.SourceNotes = append([]string(nil), m.SourceNotes...)
	return &c
}

func (m *Melody) isSegment() {}
