package modify

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	testifyassert "github.com/stretchr/testify/assert"

	"github.com/calyptra/aleamidi/model"
)

func testMelody() *model.Melody {
	m := model.NewMelody(60, "Violin")
	m.Notes = []string{"C4", "E4", "G4", "B4", "D5", "F5"}
	m.Rhythms = []float64{1, 0.5, 0.5, 1, 2, 1}
	m.Dynamics = []int{100, 90, 80, 70, 60, 50}
	return m
}

func TestTransposeNotes(t *testing.T) {
	assert := assert.New(t)

	res, err := TransposeNotes([]string{"C4", "E4", "G4"}, 2)
	assert.NoError(err)
	assert.Equal([]string{"D4", "F#4", "A4"}, res)

	// crossing an octave boundary moves the octave digit
	res, err = TransposeNotes([]string{"B4"}, 1)
	assert.NoError(err)
	assert.Equal([]string{"C5"}, res)
}

func TestTransposeNotesRejectsBadDistance(t *testing.T) {
	assert := assert.New(t)

	_, err := TransposeNotes([]string{"C4"}, 0)
	assert.Error(err)

	_, err = TransposeNotes([]string{"C4"}, 12)
	assert.Error(err)
}

func TestTransposeChordsReturnsNewChords(t *testing.T) {
	assert := assert.New(t)

	c := model.NewChord(60, "Acoustic Grand Piano")
	c.Notes = []string{"C4", "E4", "G4"}

	res, err := TransposeChords([]*model.Chord{c}, 5)
	assert.NoError(err)
	assert.Equal([]string{"F4", "A4", "C5"}, res[0].Notes)
	assert.Equal([]string{"C4", "E4", "G4"}, c.Notes)
}

func TestRetrograde(t *testing.T) {
	assert := assert.New(t)

	mel := testMelody()
	retro := Retrograde(mel)

	assert.Equal([]string{"F5", "D5", "B4", "G4", "E4", "C4"}, retro.Notes)
	assert.Equal([]float64{1, 2, 1, 0.5, 0.5, 1}, retro.Rhythms)
	assert.Equal([]int{50, 60, 70, 80, 90, 100}, retro.Dynamics)

	// input untouched
	assert.Equal("C4", mel.Notes[0])
}

func TestRetrogradeInversion(t *testing.T) {
	assert := assert.New(t)

	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"C4", "E4", "G4"}
	mel.Rhythms = []float64{1, 1, 1}
	mel.Dynamics = []int{100, 100, 100}

	res, err := RetrogradeInversion(mel)
	assert.NoError(err)
	assert.Equal([]string{"G4", "A#4", "D5"}, res.Notes)
}

func TestFragmentIsContiguousProperSubset(t *testing.T) {
	assert := assert.New(t)

	mel := testMelody()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		frag, err := Fragment(mel, rng)
		assert.NoError(err)
		assert.GreaterOrEqual(frag.Len(), 3)
		assert.Less(frag.Len(), mel.Len())

		found := false
		for start := 0; start+frag.Len() <= mel.Len(); start++ {
			if testifyassert.ObjectsAreEqual(mel.Notes[start:start+frag.Len()], frag.Notes) {
				found = true
				break
			}
		}
		assert.True(found, "fragment %v not contiguous in %v", frag.Notes, mel.Notes)
	}

	assert.Equal(6, mel.Len())
}

func TestFragmentNeedsAtLeastFourNotes(t *testing.T) {
	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"C4", "D4", "E4"}
	mel.Rhythms = []float64{1, 1, 1}
	mel.Dynamics = []int{100, 100, 100}

	_, err := Fragment(mel, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestMutatePreservesMaterial(t *testing.T) {
	assert := assert.New(t)

	mel := testMelody()
	mutant := Mutate(mel, rand.New(rand.NewSource(2)))

	assert.Equal(mel.Len(), mutant.Len())

	wantNotes := append([]string(nil), mel.Notes...)
	gotNotes := append([]string(nil), mutant.Notes...)
	sort.Strings(wantNotes)
	sort.Strings(gotNotes)
	assert.Equal(wantNotes, gotNotes)

	wantDyn := append([]int(nil), mel.Dynamics...)
	gotDyn := append([]int(nil), mutant.Dynamics...)
	sort.Ints(wantDyn)
	sort.Ints(gotDyn)
	assert.Equal(wantDyn, gotDyn)

	// input untouched
	assert.Equal([]string{"C4", "E4", "G4", "B4", "D5", "F5"}, mel.Notes)
}

func TestRotateWalksModes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"D", "E", "C"}, Rotate([]string{"C", "D", "E"}))
	assert.Empty(Rotate(nil))
}

func TestChangeDynamic(t *testing.T) {
	assert := assert.New(t)

	d, err := ChangeDynamic(100, 8)
	assert.NoError(err)
	assert.Equal(108, d)

	_, err = ChangeDynamic(124, 2)
	assert.Error(err)
}

func TestChangeDynamicsSkipsCeilingValues(t *testing.T) {
	assert.Equal(t, []int{104, 124}, ChangeDynamics([]int{100, 124}, 4))
}

func TestChangeDurations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]float64{1.5, 2.5}, ChangeDurations([]float64{1, 2}, 0.5))

	res, err := ChangeDurationsBy([]float64{1, 2}, []float64{0.5, -0.5})
	assert.NoError(err)
	assert.Equal([]float64{1.5, 1.5}, res)

	_, err = ChangeDurationsBy([]float64{1, 2}, []float64{0.5})
	assert.Error(err)
}
