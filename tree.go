package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeIndex addresses a Node within a Tree.
type NodeIndex int32

// NoNode marks the absent children of a leaf.
const NoNode = NodeIndex(-1)

// Node is either a leaf, holding Symbol and Weight, or an internal node,
// holding Weight and two children.  The Symbol of an internal node is 0 and
// carries no meaning.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   NodeIndex
	Right  NodeIndex
}

// IsLeaf returns true iff the node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode
}

// Tree is a strict binary Huffman tree stored as an arena of Nodes.  A Tree
// is never modified once built.
type Tree struct {
	nodes []Node
	root  NodeIndex
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Node returns the node at the given index.
func (t *Tree) Node(index NodeIndex) Node {
	return t.nodes[index]
}

// Len returns the total number of nodes, leaves and internal nodes alike.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the symbols of every leaf, in pre-order.
func (t *Tree) Leaves() []Symbol {
	var out []Symbol
	stack := []NodeIndex{t.root}
	for len(stack) != 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.nodes[index]
		if node.IsLeaf() {
			out = append(out, node.Symbol)
			continue
		}
		stack = append(stack, node.Right, node.Left)
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = leaf{%d, %d}\n", index, node.Symbol, node.Weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = internal{%d, %d, %d}\n", index, node.Weight, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeIndex {
	t.nodes = append(t.nodes, Node{Symbol: symbol, Weight: weight, Left: NoNode, Right: NoNode})
	return NodeIndex(len(t.nodes) - 1)
}

func (t *Tree) addInternal(weight uint64, left, right NodeIndex) NodeIndex {
	t.nodes = append(t.nodes, Node{Weight: weight, Left: left, Right: right})
	return NodeIndex(len(t.nodes) - 1)
}

// BuildTree constructs a Huffman tree from the given frequencies by
// repeatedly merging the two lightest nodes.
//
// Ties are broken first-in first-out: leaves are inserted in ascending symbol
// order, and each merged node is inserted after every node that existed
// before it.  The first node removed becomes the left child.
//
// A Huffman tree needs at least two leaves.  If fewer than two symbols have a
// non-zero frequency, the lowest-numbered absent symbols are added as leaves
// of weight 0 until there are two.
//
func BuildTree(freq *FrequencyTable) *Tree {
	t := &Tree{nodes: make([]Node, 0, 2*NumSymbols-1)}

	var numWeighted int
	for _, n := range freq {
		if n != 0 {
			numWeighted++
		}
	}
	fillers := 2 - numWeighted

	// Step 1: create leaves in symbol order and build a minheap.

	h := nodeHeap{list: make([]heapItem, 0, NumSymbols)}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		weight := freq[symbol]
		if weight == 0 {
			if fillers <= 0 {
				continue
			}
			fillers--
		}
		h.list = append(h.list, heapItem{t.addLeaf(symbol, weight), weight, h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, combine them into a new internal
	// node, and push that back, until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		weight := a.weight + b.weight
		heap.Push(&h, heapItem{t.addInternal(weight, a.index, b.index), weight, h.nextSeq})
		h.nextSeq++
	}

	t.root = heap.Pop(&h).(heapItem).index
	assert.Assertf(!t.nodes[t.root].IsLeaf(), "Huffman tree root %d is a leaf", t.root)
	return t
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	index  NodeIndex
	weight uint64
	seq    uint32
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
