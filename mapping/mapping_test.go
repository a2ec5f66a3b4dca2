package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInts(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{0, 1, 2}, FromInts([]int{0, 1, 2}))

	// values past the last index wrap
	assert.Equal([]int{0, 1, 2}, FromInts([]int{0, 5, 2}))
}

func TestFromFloats(t *testing.T) {
	assert.Equal(t, []int{1, 0, 2}, FromFloats([]float64{1.9, 0.2, 2.0}))
}

func TestFromChars(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{0, 1, 25}, FromChars("abz"))
	assert.Equal([]int{0, 1, 25}, FromChars("ABZ"))

	// punctuation and whitespace are skipped, digits map to their value
	assert.Equal([]int{7, 8, 9}, FromChars("h i! 9"))
}

func TestFromHex(t *testing.T) {
	assert := assert.New(t)

	res, err := FromHex("0xff")
	assert.NoError(err)
	assert.Equal([]int{2, 5, 5}, res)

	res, err = FromHex("0xbeef")
	assert.NoError(err)
	assert.Equal([]int{4, 8, 8, 7, 9}, res)

	_, err = FromHex("not hex")
	assert.Error(err)
}
