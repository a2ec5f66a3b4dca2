// Package mapping converts external raw data (numbers, text, hex
// strings) into index lists that the generator maps onto source-scale
// positions.
package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calyptra/aleamidi/constants"
)

// FromInts keeps every value within the bounds of its own list so the
// results stay usable as scale indices. Values beyond len-1 wrap.
func FromInts(data []int) []int {
	res := make([]int, len(data))
	for i, v := range data {
		if v > len(data)-1 && len(data) > 1 {
			v %= len(data) - 1
		}
		res[i] = v
	}
	return res
}

// FromFloats truncates each float to an int, then bounds like FromInts.
func FromFloats(data []float64) []int {
	ints := make([]int, len(data))
	for i, v := range data {
		ints[i] = int(v)
	}
	return FromInts(ints)
}

// FromChars maps letters to alphabet indices. Digit characters map to
// their value, wrapped into the alphabet; other characters are
// skipped.
func FromChars(text string) []int {
	var res []int
	for _, ch := range strings.ToLower(text) {
		if idx := strings.IndexRune(constants.Alphabet, ch); idx >= 0 {
			res = append(res, idx)
			continue
		}
		if ch >= '0' && ch <= '9' {
			n := int(ch - '0')
			if n > len(constants.Alphabet)-1 {
				n %= len(constants.Alphabet) - 1
			}
			res = append(res, n)
		}
	}
	return res
}

// FromHex converts a prefixed hex string (e.g. "0xbeef") to the
// decimal digits of its value.
func FromHex(hexStr string) ([]int, error) {
	v, err := strconv.ParseInt(hexStr, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse hex string %q: %w", hexStr, err)
	}
	var res []int
	for _, d := range strconv.FormatInt(v, 10) {
		res = append(res, int(d-'0'))
	}
	return res, nil
}
