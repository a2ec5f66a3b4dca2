package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(6, Sum([]int{1, 2, 3}))
	assert.Equal(3.5, Sum([]float64{1, 0.5, 2}))
	assert.Equal(0, Sum([]int(nil)))
}

func TestReversed(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{3, 2, 1}, Reversed([]int{1, 2, 3}))

	in := []string{"a", "b"}
	Reversed(in)
	assert.Equal([]string{"a", "b"}, in)
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(0.5, Min(2.0, 0.5))
}
