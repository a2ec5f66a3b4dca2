package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotesCoversTheFullKeyboard(t *testing.T) {
	assert := assert.New(t)

	assert.Len(Notes, MaxMidiNote-MinMidiNote+1)
	assert.Equal("A0", Notes[0])
	assert.Equal("C4", Notes[60-MinMidiNote])
	assert.Equal("A4", Notes[69-MinMidiNote])
	assert.Equal("C8", Notes[len(Notes)-1])
}

func TestInstrumentsIsTheFullProgramList(t *testing.T) {
	assert := assert.New(t)

	assert.Len(Instruments, 128)
	assert.Equal("Acoustic Grand Piano", Instruments[0])
	assert.Equal("Violin", Instruments[40])
	assert.Equal("Gunshot", Instruments[127])
}

func TestRangeBoundsAreInsideTheTable(t *testing.T) {
	assert := assert.New(t)

	for name, rng := range Range {
		assert.NotEmpty(rng, name)
	}

	violin := Range["Violin"]
	assert.Equal("G3", violin[0])
	assert.Equal("A7", violin[len(violin)-1])
}
