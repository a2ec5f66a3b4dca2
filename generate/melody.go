package generate

import (
	"fmt"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/theory"
)

// MelodyOptions parameterizes NewMelody. Zero values mean "pick one":
// zero tempo draws a tempo, zero total draws a length. Data, when
// non-nil, is a mapped index list (see package mapping) driving note
// selection. Range, when non-nil, filters notes to an instrument's
// register BEFORE rhythms and dynamics are sized.
type MelodyOptions struct {
	Tempo      float64
	Data       []int
	Total      int
	Range      []string
	AllowRests bool
}

// NewMelody generates a melody: notes from a random root collection,
// then rhythms and dynamics sized to the post-filter note count so the
// three sequences stay parallel. The instrument is left unassigned.
func (g *Generate) NewMelody(opts MelodyOptions) (*model.Melody, error) {
	melody := model.NewMelody(opts.Tempo, "")
	if melody.Tempo == 0 {
		melody.Tempo = g.NewTempo()
	}
	melody.SourceData = append([]int(nil), opts.Data...)

	result, err := g.NewNotes(opts.Data, nil, opts.Total)
	if err != nil {
		return nil, err
	}
	melody.Notes = result.Notes
	melody.Info = result.Info
	melody.SourceNotes = result.Source

	// range filtering must precede rhythm/dynamic sizing or the
	// parallel sequences desynchronize
	if opts.Range != nil {
		melody.Notes = theory.CheckRange(melody.Notes, opts.Range)
	}

	// a filter can drain the melody entirely; sizing to zero must not
	// fall back to a default count
	if n := melody.Len(); n > 0 {
		melody.Rhythms = g.NewRhythms(n, melody.Tempo, nil)
		melody.Dynamics = g.NewDynamics(n, opts.AllowRests)
	}
	return melody, nil
}

// stringWindows maps each supported string instrument to its index
// window into a multi-octave source scale. Windows are disjoint by
// register.
var stringWindows = map[string]func(scaleLen int) (int, int){
	"Violin": func(n int) (int, int) { return 13, n - 1 },
	"Viola":  func(n int) (int, int) { return 7, n - 8 },
	"Cello":  func(n int) (int, int) { return 0, n - 16 },
}

// WriteStringLine appends register-constrained notes to a string
// part: indices are sampled within the instrument's window and any
// draw outside the instrument's playable range is rejected and
// redrawn. With includeRhythm set, a random length is used and
// rhythms/dynamics are appended too. Instruments without a configured
// window are not supported.
func (g *Generate) WriteStringLine(part *model.Melody, scale []string, total int, includeRhythm bool) error {
	window, ok := stringWindows[part.Instrument]
	if !ok {
		return fmt.Errorf("instrument %q has no configured register window", part.Instrument)
	}
	instRange, ok := constants.Range[part.Instrument]
	if !ok {
		return fmt.Errorf("instrument %q has no registered pitch range", part.Instrument)
	}

	if includeRhythm {
		total = g.between(12, 30)
	}

	lo, hi := window(len(scale))
	if hi < lo {
		return fmt.Errorf("scale of %d notes is too short for %s's register window",
			len(scale), part.Instrument)
	}
	for i := 0; i < total; i++ {
		note := scale[g.between(lo, hi)]
		for !inRange(note, instRange) {
			note = scale[g.between(lo, hi)]
		}
		part.Notes = append(part.Notes, note)
	}

	if includeRhythm {
		if d := part.Len() - len(part.Rhythms); d > 0 {
			part.Rhythms = append(part.Rhythms, g.NewRhythms(d, part.Tempo, nil)...)
		}
		if d := part.Len() - len(part.Dynamics); d > 0 {
			part.Dynamics = append(part.Dynamics, g.NewDynamics(d, true)...)
		}
	}
	return nil
}

func inRange(note string, instRange []string) bool {
	for _, n := range instRange {
		if n == note {
			return true
		}
	}
	return false
}

// PalindromeMelody appends the melody's own reversal to a copy of it.
func (g *Generate) PalindromeMelody(mel *model.Melody) *model.Melody {
	res := mel.Copy()
	for i := mel.Len() - 1; i >= 0; i-- {
		res.Notes = append(res.Notes, mel.Notes[i])
		res.Rhythms = append(res.Rhythms, mel.Rhythms[i])
		res.Dynamics = append(res.Dynamics, mel.Dynamics[i])
	}
	return res
}

// PalindromeChords appends the progression's reversal to a copy of it.
func (g *Generate) PalindromeChords(chords []*model.Chord) []*model.Chord {
	res := append([]*model.Chord(nil), chords...)
	for i := len(chords) - 1; i >= 0; i-- {
		res = append(res, chords[i].Copy())
	}
	return res
}

// NewComposition generates a full mixed duet: one melodic part and one
// keyboard chord part harmonizing it. Data, when non-nil, drives the
// melody's notes. Exporting the result is the caller's terminal step.
func (g *Generate) NewComposition(data []int) (*model.Composition, error) {
	comp, err := g.InitComposition(0, "", "")
	if err != nil {
		return nil, err
	}
	comp.Ensemble = "duet"

	melody, err := g.NewMelody(MelodyOptions{Tempo: comp.Tempo, Data: data, AllowRests: true})
	if err != nil {
		return nil, err
	}
	melody.Instrument = g.NewInstrument()
	comp.AddPart(melody.Instrument, melody)

	chordTotal := g.between(melody.Len()/2, melody.Len())
	chords, err := g.NewChords(chordTotal, comp.Tempo, melody.Notes)
	if err != nil {
		return nil, err
	}

	keyboard := constants.Instruments[g.between(constants.KeyboardInstrumentStart, constants.KeyboardInstrumentEnd)]
	segments := make([]model.Segment, len(chords))
	for i, c := range chords {
		c.Instrument = keyboard
		segments[i] = c
	}
	comp.AddPart(keyboard, segments...)

	comp.Title = comp.Title + " for mixed duet"
	comp.MidiFileName = comp.Title + ".mid"
	comp.TxtFileName = comp.Title + ".txt"
	return comp, nil
}
