// Package modify transforms existing melodic material: twelve-tone
// operations, fragmentation, permutation, and dynamic/duration
// adjustments. Every function returns new containers; inputs are never
// mutated.
package modify

import (
	"fmt"
	"math/rand"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/theory"
	"github.com/calyptra/aleamidi/util"
)

func validTransposition(dist int) bool {
	return dist >= constants.MinTransposition && dist <= constants.MaxTransposition
}

// TransposeNotes shifts a line of named notes by a semitone distance
// in 1-11, without octave reduction.
func TransposeNotes(notes []string, dist int) ([]string, error) {
	if !validTransposition(dist) {
		return nil, fmt.Errorf("distance must be between %d and %d, got %d",
			constants.MinTransposition, constants.MaxTransposition, dist)
	}
	indices, err := theory.NoteIndices(notes)
	if err != nil {
		return nil, err
	}
	return theory.ToNamesChromatic(theory.Transpose(indices, dist, false))
}

// TransposeChords transposes every chord in a progression by the same
// distance, returning new chords.
func TransposeChords(chords []*model.Chord, dist int) ([]*model.Chord, error) {
	res := make([]*model.Chord, len(chords))
	for i, c := range chords {
		notes, err := TransposeNotes(c.Notes, dist)
		if err != nil {
			return nil, err
		}
		nc := c.Copy()
		nc.Notes = notes
		res[i] = nc
	}
	return res, nil
}

// Retrograde reverses a melody's notes, rhythms, and dynamics.
func Retrograde(mel *model.Melody) *model.Melody {
	retro := mel.Copy()
	retro.Notes = util.Reversed(mel.Notes)
	retro.Rhythms = util.Reversed(mel.Rhythms)
	retro.Dynamics = util.Reversed(mel.Dynamics)
	return retro
}

// RetrogradeInversion reverses a melody and inverts the reversed line.
func RetrogradeInversion(mel *model.Melody) (*model.Melody, error) {
	retro := Retrograde(mel)
	inverted, err := theory.Invert(retro.Notes)
	if err != nil {
		return nil, err
	}
	retro.Notes = inverted
	return retro, nil
}

// Fragment extracts a random contiguous slice of a melody. The melody
// needs at least 4 notes so the fragment is a proper subset.
func Fragment(mel *model.Melody, rng *rand.Rand) (*model.Melody, error) {
	if mel.Len() < 4 {
		return nil, fmt.Errorf("melody must have at least 4 notes to fragment, has %d", mel.Len())
	}

	frag := model.NewMelody(mel.Tempo, mel.Instrument)
	frag.Info = append([]string(nil), mel.Info...)
	frag.PCS = append([]int(nil), mel.PCS...)
	frag.SourceData = append([]int(nil), mel.SourceData...)
	frag.SourceNotes = append([]string(nil), mel.SourceNotes...)

	span := mel.Len() - 4
	if span < 1 {
		span = 1
	}
	fragLen := 3 + rng.Intn(span) // 3 .. len-2
	start := rng.Intn(mel.Len() - fragLen + 1)

	frag.Notes = append([]string(nil), mel.Notes[start:start+fragLen]...)
	frag.Rhythms = append([]float64(nil), mel.Rhythms[start:start+fragLen]...)
	frag.Dynamics = append([]int(nil), mel.Dynamics[start:start+fragLen]...)
	return frag, nil
}

// Mutate shuffles a melody's notes, rhythms, and dynamics
// independently of one another.
func Mutate(mel *model.Melody, rng *rand.Rand) *model.Melody {
	mutant := mel.Copy()
	rng.Shuffle(len(mutant.Notes), func(i, j int) {
		mutant.Notes[i], mutant.Notes[j] = mutant.Notes[j], mutant.Notes[i]
	})
	rng.Shuffle(len(mutant.Rhythms), func(i, j int) {
		mutant.Rhythms[i], mutant.Rhythms[j] = mutant.Rhythms[j], mutant.Rhythms[i]
	})
	rng.Shuffle(len(mutant.Dynamics), func(i, j int) {
		mutant.Dynamics[i], mutant.Dynamics[j] = mutant.Dynamics[j], mutant.Dynamics[i]
	})
	return mutant
}

// Rotate moves the first note to the end. Applied repeatedly it walks
// through a scale's modes.
func Rotate(notes []string) []string {
	if len(notes) == 0 {
		return notes
	}
	res := append([]string(nil), notes[1:]...)
	return append(res, notes[0])
}

// maxAdjustable is the loudest dynamic that may still be raised.
const maxAdjustable = 123

// ChangeDynamic raises or lowers a single dynamic.
func ChangeDynamic(dynamic, diff int) (int, error) {
	if dynamic > maxAdjustable {
		return 0, fmt.Errorf("dynamic too high to adjust, max is %d, got %d", maxAdjustable, dynamic)
	}
	return dynamic + diff, nil
}

// ChangeDynamics applies a shared adjustment to a list of dynamics,
// leaving values above the adjustable ceiling untouched.
func ChangeDynamics(dynamics []int, diff int) []int {
	res := make([]int, len(dynamics))
	for i, d := range dynamics {
		if d <= maxAdjustable {
			res[i] = d + diff
		} else {
			res[i] = d
		}
	}
	return res
}

// ChangeDurations augments or diminishes every rhythm by the same
// amount.
func ChangeDurations(rhythms []float64, val float64) []float64 {
	res := make([]float64, len(rhythms))
	for i, r := range rhythms {
		res[i] = r + val
	}
	return res
}

// ChangeDurationsBy adjusts each rhythm by its own delta. The delta
// list must match exactly; on mismatch nothing is applied.
func ChangeDurationsBy(rhythms, vals []float64) ([]float64, error) {
	if len(vals) != len(rhythms) {
		return nil, fmt.Errorf("alteration list length (%d) must match rhythms length (%d)",
			len(vals), len(rhythms))
	}
	res := make([]float64, len(rhythms))
	for i, r := range rhythms {
		res[i] = r + vals[i]
	}
	return res, nil
}
