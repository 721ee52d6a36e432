package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts occurrences of every Symbol in the alphabet.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies consumes r to the end, counting each 8-bit literal, and
// then sets the count of EOFSymbol to exactly 1.  The caller must rewind r
// before reading it again.
func CountFrequencies(r BitReader) (*FrequencyTable, error) {
	var freq FrequencyTable
	for {
		u, err := r.ReadBits(LiteralBits)
		if err != nil {
			if isEndOfBits(err) {
				break
			}
			return nil, ioError(PhaseCount, err, "read literal")
		}
		freq[u]++
	}
	freq[EOFSymbol] = 1
	return &freq, nil
}

// Total returns the number of literal symbols counted.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freq[:NumLiterals] {
		sum += n
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (freq *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for symbol, n := range freq {
		if n != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, n)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
