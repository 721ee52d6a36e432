package huffman

// Encoder emits the Huffman-coded body of a compressed stream.
type Encoder struct {
	codes *CodeTable
}

// Init initializes this Encoder with the codes derived from t.
func (e *Encoder) Init(t *Tree) {
	*e = Encoder{codes: DeriveCodes(t)}
}

// Codes returns the CodeTable in use.
func (e Encoder) Codes() *CodeTable {
	return e.codes
}

// Encode encodes a Symbol into a Huffman-coded bit string.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// EncodeStream reads 8-bit literals from r until it runs out of bits, writes
// the code for each one to w, and finally writes the code for EOFSymbol.  It
// returns the number of literals encoded.
//
// A literal with no code means r changed between the counting pass and this
// one; it is reported as an IOError.
//
func (e Encoder) EncodeStream(r BitReader, w BitWriter) (int64, error) {
	var n int64
	for {
		u, err := r.ReadBits(LiteralBits)
		if err != nil {
			if isEndOfBits(err) {
				break
			}
			return n, ioError(PhaseBody, err, "read literal")
		}
		hc := e.codes[u]
		if hc.Size == 0 {
			return n, formatError(IOError, PhaseBody, "literal %d has no code; input changed between passes", u)
		}
		if err := writeCode(w, hc); err != nil {
			return n, ioError(PhaseBody, err, "write code")
		}
		n++
	}
	if err := writeCode(w, e.codes[EOFSymbol]); err != nil {
		return n, ioError(PhaseBody, err, "write end-of-stream code")
	}
	return n, nil
}
