package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest Code this package will construct.  A tree deep
// enough to need more would require far more input than a uint64 can count.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit on the wire.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code that is hc followed by one more bit.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | (bit & 1)}
}

// Bit returns the i'th bit of the code, counting from the first bit.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix returns true iff prefix is a leading part of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
