// Package huffman implements greedy Huffman coding of byte streams, as used
// for the final entropy-coding stage of a BWT/MTF block compressor.
//
// The code tree is built by repeatedly combining the two lowest-frequency
// nodes.  Ties are broken deterministically: leaves sort by byte value, and
// every internal node sorts after every leaf, in order of creation.  Codes are
// read off the tree with left edges as 0 and right edges as 1, and the
// resulting bit string is packed most-significant-bit first.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
