package huffman

import (
	"fmt"
)

// DecoderState is the position of a Decoder within its tree walk.
type DecoderState byte

const (
	// AtRoot means the Decoder is at the root, between symbols.
	AtRoot DecoderState = iota

	// AtNode means the Decoder is partway down the tree.
	AtNode

	// Done means the Decoder has reached the EOFSymbol leaf.
	Done
)

var stateNames = [...]string{"AtRoot", "AtNode", "Done"}

// String returns the name of the state.
func (state DecoderState) String() string {
	if int(state) < len(stateNames) {
		return stateNames[state]
	}
	return fmt.Sprintf("DecoderState(%d)", byte(state))
}

// Decoder walks a Huffman tree one bit at a time.
type Decoder struct {
	tree    *Tree
	current NodeIndex
	state   DecoderState
}

// Init initializes this Decoder to start at the root of t.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t, current: t.root, state: AtRoot}
}

// State returns the current state.
func (d *Decoder) State() DecoderState {
	return d.state
}

// Step follows one edge of the tree: left for bit 0, right for bit 1.
//
// If the step lands on a literal leaf, Step returns that symbol with ok ==
// true and goes back to the root.  If it lands on the EOFSymbol leaf, Step
// returns EOFSymbol with ok == true and the Decoder is Done.  Otherwise it
// returns InvalidSymbol with ok == false.
//
// Step must not be called once the Decoder is Done.
//
func (d *Decoder) Step(bit uint64) (symbol Symbol, ok bool) {
	node := d.tree.nodes[d.current]
	if bit == 0 {
		d.current = node.Left
	} else {
		d.current = node.Right
	}

	node = d.tree.nodes[d.current]
	if !node.IsLeaf() {
		d.state = AtNode
		return InvalidSymbol, false
	}
	if node.Symbol == EOFSymbol {
		d.state = Done
		return EOFSymbol, true
	}
	d.current = d.tree.root
	d.state = AtRoot
	return node.Symbol, true
}

// DecodeStream reads bits from r and writes each decoded literal to w as
// one byte, stopping at the EOFSymbol code.  Bits after that code are never
// read.  It returns the number of literals written.
//
// Running out of bits first is a CorruptBodyError.  Literals already written
// to w stay written.
//
func (d *Decoder) DecodeStream(r BitReader, w BitWriter) (int64, error) {
	var n int64
	for d.state != Done {
		bit, err := r.ReadBits(1)
		if err != nil {
			if isEndOfBits(err) {
				return n, formatError(CorruptBodyError, PhaseBody, "unexpected end of stream after %d literals; no end-of-stream code", n)
			}
			return n, ioError(PhaseBody, err, "read code bit")
		}

		symbol, ok := d.Step(bit)
		if !ok || symbol == EOFSymbol {
			continue
		}
		if err := w.WriteBits(uint64(symbol), LiteralBits); err != nil {
			return n, ioError(PhaseBody, err, "write literal")
		}
		n++
	}
	return n, nil
}
