package theory

import (
	"testing"

	"github.com/calyptra/aleamidi/constants"
	"github.com/stretchr/testify/assert"
)

func TestRemoveOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", RemoveOctave("C#4"))
	assert.Equal("A", RemoveOctave("A"))
	assert.Equal("G", RemoveOctave("G10"))
}

func TestPitchClassResolvesSharpAndFlatSpellings(t *testing.T) {
	assert := assert.New(t)

	pc, err := PitchClass("A#3")
	assert.NoError(err)
	assert.Equal(10, pc)

	pc, err = PitchClass("Bb3")
	assert.NoError(err)
	assert.Equal(10, pc)

	pc, err = PitchClass("C")
	assert.NoError(err)
	assert.Equal(0, pc)
}

func TestPitchClassRejectsUnknownName(t *testing.T) {
	_, err := PitchClass("H4")
	assert.Error(t, err)
}

func TestNoteIndexAnchorsAndFlats(t *testing.T) {
	assert := assert.New(t)

	idx, err := NoteIndex("A0")
	assert.NoError(err)
	assert.Equal(0, idx)

	idx, err = NoteIndex("C8")
	assert.NoError(err)
	assert.Equal(len(constants.Notes)-1, idx)

	sharp, err := NoteIndex("A#3")
	assert.NoError(err)
	flat, err2 := NoteIndex("Bb3")
	assert.NoError(err2)
	assert.Equal(sharp, flat)
}

func TestNoteIndexFailsHardOutsideTable(t *testing.T) {
	assert := assert.New(t)

	_, err := NoteIndex("C9")
	assert.Error(err)

	_, err = NoteIndex("G#0")
	assert.Error(err)

	// no octave digit means no table entry
	_, err = NoteIndex("C")
	assert.Error(err)
}

func TestOctEquiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, OctEquiv(12))
	assert.Equal(1, OctEquiv(25))
	assert.Equal(11, OctEquiv(-1))
	assert.Equal([]int{0, 4, 7}, OctEquivAll([]int{12, 16, 19}))
}

func TestToNames(t *testing.T) {
	assert := assert.New(t)

	names, err := ToNames([]int{0, 4, 7}, 4)
	assert.NoError(err)
	assert.Equal([]string{"C4", "E4", "G4"}, names)

	// octave 0 means no suffix, with reduction still applied
	names, err = ToNames([]int{14}, 0)
	assert.NoError(err)
	assert.Equal([]string{"D"}, names)
}

func TestToNamesRejectsOctaveOutsideWindow(t *testing.T) {
	_, err := ToNames([]int{0}, 9)
	assert.Error(t, err)

	_, err = ToNames([]int{0}, 1)
	assert.Error(t, err)
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{6, 10, 13}, Transpose([]int{0, 4, 7}, 6, false))
	assert.Equal([]int{6, 10, 1}, Transpose([]int{0, 4, 7}, 6, true))
}

func TestTransposeBy(t *testing.T) {
	assert := assert.New(t)

	res, err := TransposeBy([]int{0, 4, 7}, []int{1, 2, 3}, false)
	assert.NoError(err)
	assert.Equal([]int{1, 6, 10}, res)

	_, err = TransposeBy([]int{0, 4}, []int{1}, false)
	assert.Error(err)
}

func TestIntervals(t *testing.T) {
	assert := assert.New(t)

	res, err := Intervals([]string{"C4", "E4", "G4", "C4"})
	assert.NoError(err)
	assert.Equal([]int{4, 3, -7}, res)
}

func TestInvertNegatesIntervalsFromFirstNote(t *testing.T) {
	assert := assert.New(t)

	inverted, err := Invert([]string{"C4", "E4", "G4"})
	assert.NoError(err)
	assert.Equal([]string{"C4", "G#3", "F3"}, inverted)

	// inverting twice restores the line
	back, err := Invert(inverted)
	assert.NoError(err)
	assert.Equal([]string{"C4", "E4", "G4"}, back)
}

func TestInvertEmptyLine(t *testing.T) {
	inverted, err := Invert(nil)
	assert.NoError(t, err)
	assert.Nil(t, inverted)
}

func TestNoteRange(t *testing.T) {
	assert := assert.New(t)

	lo, hi, err := NoteRange([]string{"G4", "C4", "E5"})
	assert.NoError(err)
	cIdx, _ := NoteIndex("C4")
	eIdx, _ := NoteIndex("E5")
	assert.Equal(cIdx, lo)
	assert.Equal(eIdx, hi)

	_, _, err = NoteRange(nil)
	assert.Error(err)
}

func TestCheckRangeAndDiff(t *testing.T) {
	assert := assert.New(t)
	violin := constants.Range["Violin"]

	notes := []string{"C2", "A4", "E5", "C8"}
	assert.Equal([]string{"A4", "E5"}, CheckRange(notes, violin))
	assert.Equal([]string{"C2", "C8"}, Diff(notes, violin))
}
