package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code, in bits, that a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Of the Size low-order
	// bits, the most significant one is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code %s cannot grow past %d bits", hc, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// HasPrefix reports whether prefix is a leading subsequence of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits of this Code as a string of '0' and '1'.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
