package huffman

// maxTreeNodes is the node count of a full tree over every Symbol.
const maxTreeNodes = 2*NumSymbols - 1

// WriteTree serializes t in pre-order: a 0 bit for each internal node,
// followed by its left and then right subtree, and a 1 bit for each leaf,
// followed by its Symbol in SymbolBits bits.  Weights are not written.
func WriteTree(w BitWriter, t *Tree) error {
	return writeSubtree(w, t, t.root)
}

func writeSubtree(w BitWriter, t *Tree, index NodeIndex) error {
	node := t.nodes[index]
	if node.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return ioError(PhaseHeader, err, "write leaf bit")
		}
		if err := w.WriteBits(uint64(node.Symbol), SymbolBits); err != nil {
			return ioError(PhaseHeader, err, "write leaf symbol")
		}
		return nil
	}
	if err := w.WriteBits(0, 1); err != nil {
		return ioError(PhaseHeader, err, "write internal bit")
	}
	if err := writeSubtree(w, t, node.Left); err != nil {
		return err
	}
	return writeSubtree(w, t, node.Right)
}

// ReadTree parses a tree written by WriteTree, consuming exactly the bits
// that WriteTree produced.  The returned nodes all have weight 0.
//
// Running out of bits is a CorruptHeaderError, as is any tree that could not
// have been written by a compressor: a leaf Symbol above EOFSymbol, more
// nodes than a tree over NumSymbols leaves can have, a root that is a leaf,
// or anything other than exactly one EOFSymbol leaf.
//
func ReadTree(r BitReader) (*Tree, error) {
	t := &Tree{nodes: make([]Node, 0, maxTreeNodes)}
	root, err := readSubtree(r, t)
	if err != nil {
		return nil, err
	}
	t.root = root

	if t.nodes[root].IsLeaf() {
		return nil, formatError(CorruptHeaderError, PhaseHeader, "tree has a single leaf %d", t.nodes[root].Symbol)
	}
	var numEOF int
	for _, node := range t.nodes {
		if node.IsLeaf() && node.Symbol == EOFSymbol {
			numEOF++
		}
	}
	if numEOF != 1 {
		return nil, formatError(CorruptHeaderError, PhaseHeader, "tree has %d end-of-stream leaves, expected 1", numEOF)
	}
	return t, nil
}

func readSubtree(r BitReader, t *Tree) (NodeIndex, error) {
	if len(t.nodes) >= maxTreeNodes {
		return NoNode, formatError(CorruptHeaderError, PhaseHeader, "tree has more than %d nodes", maxTreeNodes)
	}

	bit, err := r.ReadBits(1)
	if err != nil {
		return NoNode, headerReadError(err, "read node bit")
	}

	if bit == 1 {
		u, err := r.ReadBits(SymbolBits)
		if err != nil {
			return NoNode, headerReadError(err, "read leaf symbol")
		}
		symbol := Symbol(u)
		if !symbol.IsValid() {
			return NoNode, formatError(CorruptHeaderError, PhaseHeader, "leaf symbol %d out of range", symbol)
		}
		return t.addLeaf(symbol, 0), nil
	}

	// Reserve the slot so that node limits count this node too.
	index := t.addInternal(0, NoNode, NoNode)
	left, err := readSubtree(r, t)
	if err != nil {
		return NoNode, err
	}
	right, err := readSubtree(r, t)
	if err != nil {
		return NoNode, err
	}
	t.nodes[index].Left = left
	t.nodes[index].Right = right
	return index, nil
}

func headerReadError(err error, msg string) error {
	if isEndOfBits(err) {
		return formatError(CorruptHeaderError, PhaseHeader, "unexpected end of stream while trying to %s", msg)
	}
	return ioError(PhaseHeader, err, msg)
}
