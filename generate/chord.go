package generate

import (
	"fmt"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/theory"
	"github.com/calyptra/aleamidi/timing"
)

// NewChord generates a chord of 2-9 notes sampled (with replacement)
// from the given scale, or from a randomly drawn one when scale is
// nil. With includeRhythm set, one shared rhythm and one shared
// dynamic are assigned, the rhythm scaled to the chord's tempo.
func (g *Generate) NewChord(tempo float64, scale []string, includeRhythm bool) (*model.Chord, error) {
	if tempo == 0 {
		tempo = constants.BaseTempo
	}
	chord := model.NewChord(tempo, "")

	if scale == nil {
		octave := g.between(constants.MinOctave, constants.MaxOctave)
		if g.coin() {
			notes, info, err := g.PickRoot(true, octave)
			if err != nil {
				return nil, err
			}
			chord.SourceNotes = notes
			chord.Info = info
		} else {
			notes, pcs, err := g.NewScale(true, octave)
			if err != nil {
				return nil, err
			}
			chord.SourceNotes = notes
			chord.PCS = pcs
			chord.Info = "invented scale"
		}
	} else {
		chord.SourceNotes = append([]string(nil), scale...)
	}

	total := g.between(constants.MinChordNotes, constants.MaxChordNotes)
	chord.Notes = g.ChooseNotes(chord.SourceNotes, total)

	if includeRhythm {
		rhythm := g.NewRhythm()
		if chord.Tempo != constants.BaseTempo {
			rhythm = timing.ScaleToTempo(chord.Tempo, rhythm, false)
		}
		chord.Rhythm = rhythm
		chord.Dynamic = g.NewDynamic(false)
	}
	return chord, nil
}

// NewChords generates a chord progression. Non-positive total and zero
// tempo pick defaults; a nil scale derives one from freshly generated
// notes.
func (g *Generate) NewChords(total int, tempo float64, scale []string) ([]*model.Chord, error) {
	if total <= 0 {
		total = g.between(constants.MinChords, constants.MaxChords)
	}
	if tempo == 0 {
		tempo = g.NewTempo()
	}
	if scale == nil {
		result, err := g.NewNotes(nil, nil, 0)
		if err != nil {
			return nil, err
		}
		scale = result.Notes
	}

	chords := make([]*model.Chord, total)
	for i := range chords {
		c, err := g.NewChord(tempo, scale, true)
		if err != nil {
			return nil, err
		}
		chords[i] = c
	}
	return chords, nil
}

// NewTriads stacks triads over a multi-octave source scale: each triad
// takes every other scale degree below its top note.
func (g *Generate) NewTriads(scale []string, total int) []*model.Chord {
	var triads []*model.Chord
	for i := 4; i < len(scale) && len(triads) < total; i++ {
		triad := model.NewChord(constants.BaseTempo, "")
		triad.Notes = []string{scale[i-4], scale[i-2], scale[i]}
		triad.Rhythm = 2.0
		triad.Dynamic = 100
		triads = append(triads, triad)
	}
	return triads
}

// SymmetricTriad builds an intervallically symmetric chord of n pitch
// classes by stacking one interval from the root.
func (g *Generate) SymmetricTriad(root, interval, n int) ([]int, error) {
	if interval < 1 || interval > 6 {
		return nil, fmt.Errorf("interval must be between 1 and 6, got %d", interval)
	}
	root = theory.OctEquiv(root)

	chord := make([]int, 0, n)
	current := root
	for len(chord) < n {
		chord = append(chord, current)
		current = theory.OctEquiv(current + interval)
	}
	return chord, nil
}
