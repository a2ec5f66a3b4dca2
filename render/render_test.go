package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calyptra/aleamidi/model"
)

func TestMelodyRendersSequentially(t *testing.T) {
	assert := assert.New(t)

	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"C4", "D4", "E4"}
	mel.Rhythms = []float64{1, 0.5, 2}
	mel.Dynamics = []int{100, 0, 80}

	events, cursor, err := Melody(mel, 0)
	assert.NoError(err)
	assert.Len(events, 3)
	assert.Equal(3.5, cursor)

	assert.Equal(NoteEvent{Pitch: 60, Velocity: 100, Start: 0, End: 1}, events[0])
	assert.Equal(NoteEvent{Pitch: 62, Velocity: 0, Start: 1, End: 1.5}, events[1])
	assert.Equal(NoteEvent{Pitch: 64, Velocity: 80, Start: 1.5, End: 3.5}, events[2])
}

func TestMelodyStartsAtGivenCursor(t *testing.T) {
	assert := assert.New(t)

	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"A4"}
	mel.Rhythms = []float64{1}
	mel.Dynamics = []int{90}

	events, cursor, err := Melody(mel, 10)
	assert.NoError(err)
	assert.Equal(10.0, events[0].Start)
	assert.Equal(11.0, cursor)
}

func TestMelodyRejectsOutOfSyncSequences(t *testing.T) {
	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"C4", "D4"}
	mel.Rhythms = []float64{1}
	mel.Dynamics = []int{100, 100}

	_, _, err := Melody(mel, 0)
	assert.Error(t, err)
}

func TestMelodyFailsHardOnUnknownNote(t *testing.T) {
	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"C9"}
	mel.Rhythms = []float64{1}
	mel.Dynamics = []int{100}

	_, _, err := Melody(mel, 0)
	assert.Error(t, err)
}

func TestChordSharesOneIntervalAndAdvancesOnce(t *testing.T) {
	assert := assert.New(t)

	c := model.NewChord(60, "Acoustic Grand Piano")
	c.Notes = []string{"C4", "E4", "G4"}
	c.Rhythm = 2
	c.Dynamic = 80

	events, cursor, err := Chord(c, 1)
	assert.NoError(err)
	assert.Len(events, 3)
	assert.Equal(3.0, cursor)

	for _, e := range events {
		assert.Equal(1.0, e.Start)
		assert.Equal(3.0, e.End)
		assert.Equal(uint8(80), e.Velocity)
	}
}

func TestChordRejectsBadVelocity(t *testing.T) {
	c := model.NewChord(60, "Acoustic Grand Piano")
	c.Notes = []string{"C4"}
	c.Rhythm = 1
	c.Dynamic = 200

	_, _, err := Chord(c, 0)
	assert.Error(t, err)
}

func TestSegmentsThreadsCursorAcrossMixedSequence(t *testing.T) {
	assert := assert.New(t)

	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"C4", "D4"}
	mel.Rhythms = []float64{1, 1}
	mel.Dynamics = []int{100, 100}

	c := model.NewChord(60, "Violin")
	c.Notes = []string{"E4", "G4"}
	c.Rhythm = 2
	c.Dynamic = 90

	events, cursor, err := Segments([]model.Segment{mel, c}, 0)
	assert.NoError(err)
	assert.Len(events, 4)
	assert.Equal(4.0, cursor)

	// the chord starts where the melody ended
	assert.Equal(2.0, events[2].Start)
	assert.Equal(2.0, events[3].Start)

	prev := 0.0
	for _, e := range events {
		assert.GreaterOrEqual(e.Start, prev)
		prev = e.Start
	}
}

func TestPartBindsInstrumentProgram(t *testing.T) {
	assert := assert.New(t)

	mel := model.NewMelody(60, "Violin")
	mel.Notes = []string{"A4"}
	mel.Rhythms = []float64{1}
	mel.Dynamics = []int{90}

	track, err := Part(model.Part{Name: "lead", Segments: []model.Segment{mel}})
	assert.NoError(err)
	assert.Equal("lead", track.Name)
	assert.Equal("Violin", track.Instrument)
	assert.Equal(uint8(40), track.Program)
	assert.Len(track.Events, 1)
}

func TestCompositionWithNoPartsFails(t *testing.T) {
	_, err := Composition(&model.Composition{})
	assert.ErrorIs(t, err, model.ErrNoParts)
}

func TestCompositionRendersPartsInInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	lead := model.NewMelody(60, "Violin")
	lead.Notes = []string{"A4"}
	lead.Rhythms = []float64{1}
	lead.Dynamics = []int{90}

	accomp := model.NewChord(60, "Acoustic Grand Piano")
	accomp.Notes = []string{"C4", "E4"}
	accomp.Rhythm = 2
	accomp.Dynamic = 70

	comp := &model.Composition{Title: "test", Tempo: 60}
	comp.AddPart("Violin", lead)
	comp.AddPart("Acoustic Grand Piano", accomp)

	tracks, err := Composition(comp)
	assert.NoError(err)
	assert.Len(tracks, 2)
	assert.Equal("Violin", tracks[0].Instrument)
	assert.Equal("Acoustic Grand Piano", tracks[1].Instrument)
}

func TestInstrumentProgramIgnoresCaseAndPunctuation(t *testing.T) {
	assert := assert.New(t)

	p, err := InstrumentProgram("Acoustic Grand Piano")
	assert.NoError(err)
	assert.Equal(uint8(0), p)

	p, err = InstrumentProgram("acoustic grand piano")
	assert.NoError(err)
	assert.Equal(uint8(0), p)

	p, err = InstrumentProgram("Electric Bass (finger)")
	assert.NoError(err)
	assert.Equal(uint8(33), p)

	_, err = InstrumentProgram("Kazoo")
	assert.Error(err)
}
