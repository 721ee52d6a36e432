// Package huffman implements a tree-based static Huffman file format.
//
// A compressed stream consists of a 32-bit magic number, the pre-order
// serialization of the Huffman tree (0 for an internal node, 1 followed by
// a 9-bit symbol for a leaf), and then the Huffman codes for every input
// byte followed by the code for the end-of-stream sentinel.  All multi-bit
// fields are written most significant bit first.  The final byte is padded
// with zero bits, which the decoder ignores.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
