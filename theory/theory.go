// Package theory implements pitch-class and note-name arithmetic over
// the chromatic reference table: lookups, transposition, inversion,
// intervals, and register checks.
package theory

import (
	"fmt"

	"github.com/calyptra/aleamidi/constants"
)

// flats maps enharmonic flat spellings to the table's sharp spellings.
var flats = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// RemoveOctave strips a trailing octave digit from a note name.
// "C#4" -> "C#", "A" -> "A".
func RemoveOctave(note string) string {
	for i := len(note) - 1; i >= 0; i-- {
		c := note[i]
		if c < '0' || c > '9' {
			return note[:i+1]
		}
	}
	return note
}

// normalize rewrites a flat-spelled pitch-class name to its sharp
// equivalent. The octave part, if any, is preserved.
func normalize(note string) string {
	name := RemoveOctave(note)
	if sharp, ok := flats[name]; ok {
		return sharp + note[len(name):]
	}
	return note
}

// PitchClass resolves a note name (with or without octave) to its
// pitch-class integer 0-11.
func PitchClass(note string) (int, error) {
	name := normalize(RemoveOctave(note))
	for i, pc := range constants.PitchClasses {
		if pc == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown pitch class: %q", note)
}

// GetPCS resolves a slice of note names to pitch classes in order.
func GetPCS(notes []string) ([]int, error) {
	pcs := make([]int, len(notes))
	for i, n := range notes {
		pc, err := PitchClass(n)
		if err != nil {
			return nil, err
		}
		pcs[i] = pc
	}
	return pcs, nil
}

// NoteIndex resolves a note name with octave to its position in the
// chromatic table. Names outside the covered range fail hard; they are
// never clamped.
func NoteIndex(note string) (int, error) {
	n := normalize(note)
	for i, name := range constants.Notes {
		if name == n {
			return i, nil
		}
	}
	return 0, fmt.Errorf("note %q is not in the chromatic table", note)
}

// NoteIndices resolves a slice of note names to table positions.
func NoteIndices(notes []string) ([]int, error) {
	res := make([]int, len(notes))
	for i, n := range notes {
		idx, err := NoteIndex(n)
		if err != nil {
			return nil, err
		}
		res[i] = idx
	}
	return res, nil
}

// NoteName returns the chromatic table entry at the given position.
func NoteName(index int) (string, error) {
	if index < 0 || index >= len(constants.Notes) {
		return "", fmt.Errorf("note index %d outside chromatic table", index)
	}
	return constants.Notes[index], nil
}

// OctEquiv reduces a pitch integer to its pitch class 0-11.
func OctEquiv(pitch int) int {
	pc := pitch % 12
	if pc < 0 {
		pc += 12
	}
	return pc
}

// OctEquivAll reduces each pitch in a slice, returning a new slice.
func OctEquivAll(pitches []int) []int {
	res := make([]int, len(pitches))
	for i, p := range pitches {
		res[i] = OctEquiv(p)
	}
	return res
}

// ToNames converts pitch classes to note-name strings, reducing each
// to 0-11 first. Octave 0 means no octave suffix; otherwise the octave
// must sit inside the generation window.
func ToNames(pcs []int, octave int) ([]string, error) {
	if octave != 0 &&
		(octave < constants.GenerationOctaveStart || octave > constants.GenerationOctaveEnd) {
		return nil, fmt.Errorf("octave must be within %d-%d, got %d",
			constants.GenerationOctaveStart, constants.GenerationOctaveEnd, octave)
	}
	res := make([]string, len(pcs))
	for i, pc := range pcs {
		name := constants.PitchClasses[OctEquiv(pc)]
		if octave != 0 {
			name = fmt.Sprintf("%s%d", name, octave)
		}
		res[i] = name
	}
	return res, nil
}

// ToNamesChromatic converts chromatic table positions to note names
// with octaves, without octave reduction.
func ToNamesChromatic(indices []int) ([]string, error) {
	res := make([]string, len(indices))
	for i, idx := range indices {
		name, err := NoteName(idx)
		if err != nil {
			return nil, err
		}
		res[i] = name
	}
	return res, nil
}

// Transpose shifts every pitch class by the same distance. With octEq
// set, results are reduced mod 12.
func Transpose(pcs []int, dist int, octEq bool) []int {
	res := make([]int, len(pcs))
	for i, pc := range pcs {
		res[i] = pc + dist
	}
	if octEq {
		res = OctEquivAll(res)
	}
	return res
}

// TransposeBy shifts each pitch class by its own distance. The
// distance list must match the pitch-class list exactly; on mismatch
// nothing is applied.
func TransposeBy(pcs []int, dists []int, octEq bool) ([]int, error) {
	if len(dists) != len(pcs) {
		return nil, fmt.Errorf("interval list length (%d) must match pitch class list length (%d)",
			len(dists), len(pcs))
	}
	res := make([]int, len(pcs))
	for i, pc := range pcs {
		res[i] = pc + dists[i]
	}
	if octEq {
		res = OctEquivAll(res)
	}
	return res, nil
}

// Intervals returns the signed semitone distance between each
// consecutive pair of notes. len(result) == len(notes) - 1.
func Intervals(notes []string) ([]int, error) {
	indices, err := NoteIndices(notes)
	if err != nil {
		return nil, err
	}
	var res []int
	for i := 1; i < len(indices); i++ {
		res = append(res, indices[i]-indices[i-1])
	}
	return res, nil
}

// Invert mirrors a line: every consecutive interval is negated and the
// sequence is rebuilt from the unchanged first note.
func Invert(notes []string) ([]string, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	indices, err := NoteIndices(notes)
	if err != nil {
		return nil, err
	}
	res := []int{indices[0]}
	for i := 1; i < len(indices); i++ {
		interval := indices[i] - indices[i-1]
		res = append(res, res[len(res)-1]-interval)
	}
	return ToNamesChromatic(res)
}

// NoteRange returns the lowest and highest table positions among the
// given notes.
func NoteRange(notes []string) (int, int, error) {
	if len(notes) == 0 {
		return 0, 0, fmt.Errorf("no notes supplied")
	}
	indices, err := NoteIndices(notes)
	if err != nil {
		return 0, 0, err
	}
	lo, hi := indices[0], indices[0]
	for _, idx := range indices[1:] {
		if idx < lo {
			lo = idx
		}
		if idx > hi {
			hi = idx
		}
	}
	return lo, hi, nil
}

// Diff returns the notes that fall outside an instrument's range.
func Diff(notes, instRange []string) []string {
	var res []string
	for _, n := range notes {
		if !contains(instRange, n) {
			res = append(res, n)
		}
	}
	return res
}

// CheckRange filters out notes an instrument cannot play, returning a
// new slice.
func CheckRange(notes, instRange []string) []string {
	var res []string
	for _, n := range notes {
		if contains(instRange, n) {
			res = append(res, n)
		}
	}
	return res
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
