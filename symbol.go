package huffman

// Symbol represents a symbol in the 257-symbol alphabet: the 256 byte values
// plus EOFSymbol.  Negative symbols are not valid.
type Symbol int32

const (
	// NumLiterals is the number of literal (byte-valued) symbols.
	NumLiterals = 256

	// NumSymbols is the total size of the alphabet, sentinel included.
	NumSymbols = NumLiterals + 1

	// LiteralBits is the width of one literal symbol on the wire.
	LiteralBits = 8

	// SymbolBits is the width of a leaf symbol in the tree header.  It is
	// one bit wider than LiteralBits so that EOFSymbol fits.
	SymbolBits = LiteralBits + 1

	// MagicBits is the width of the leading magic number.
	MagicBits = 32

	// MagicNumber identifies the tree-based Huffman format.
	MagicNumber = 0xface8200 | 1
)

// EOFSymbol is the pseudo-EOF sentinel that terminates every body.
const EOFSymbol = Symbol(NumLiterals)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff sym is a literal byte or EOFSymbol.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= EOFSymbol
}
