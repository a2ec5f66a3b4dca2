package model

// Chord is a set of simultaneous notes sharing exactly one rhythm and
// one dynamic. Unlike a Melody it has no per-note timing.
type Chord struct {
	Tempo      float64
	Instrument string

	Notes   []string
	Rhythm  float64
	Dynamic int

	// provenance
	Info        string
	PCS         []int
	SourceNotes []string
}

// NewChord returns an empty chord with tempo and instrument set.
func NewChord(tempo float64, instrument string) *Chord {
	return &Chord{Tempo: tempo, Instrument: instrument}
}

// Copy returns a deep copy of the chord.
func (c *Chord) Copy() *Chord {
	n := *c
	n.Notes = append([]string(nil), c.Notes...)
	n.PCS = append([]int(nil), c.PCS...)
	n.SourceNotes = append([]string(nil), c.SourceNotes...)
	return &n
}

func (c *Chord) isSegment() {}
