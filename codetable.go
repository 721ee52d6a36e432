package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  Symbols absent from the tree have
// a zero-size Code.
type CodeTable [NumSymbols]Code

// DeriveCodes walks the tree depth first, appending 0 for each left edge and
// 1 for each right edge, and records the path to every leaf.
func DeriveCodes(t *Tree) *CodeTable {
	var codes CodeTable

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index NodeIndex
		path  Code
		x     byte
	}

	stack := make([]stackItem, 0, MaxCodeSize)

	processChild := func(child NodeIndex, path Code) {
		node := t.nodes[child]
		if !node.IsLeaf() {
			stack = append(stack, stackItem{index: child, path: path})
			return
		}
		assert.Assertf(path.Size != 0, "symbol %d has a zero-length code", node.Symbol)
		assert.Assertf(node.Symbol.IsValid(), "leaf symbol %d out of range", node.Symbol)
		codes[node.Symbol] = path
	}

	assert.Assertf(!t.nodes[t.root].IsLeaf(), "Huffman tree root %d is a leaf", t.root)
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		node := t.nodes[top.index]
		switch x {
		case 0:
			assert.Assertf(top.path.Size < MaxCodeSize, "Huffman code exceeds %d bits", MaxCodeSize)
			processChild(node.Left, top.path.Append(0))
		case 1:
			processChild(node.Right, top.path.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return &codes
}

// Encode returns the Code for symbol.
func (codes *CodeTable) Encode(symbol Symbol) Code {
	return codes[symbol]
}

// MinSize is the bit length of the shortest code in the table.
func (codes *CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range codes {
		if hc.Size != 0 && (minSize == 0 || hc.Size < minSize) {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code in the table.
func (codes *CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range codes {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols without a code are omitted.
func (codes *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", codes.MaxSize())
	for symbol, hc := range codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
