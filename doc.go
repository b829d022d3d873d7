// Package blocksort runs a three-stage block-compression pipeline over a
// text buffer: the Burrows-Wheeler transform, move-to-front recoding, and
// Huffman entropy coding.
//
// The pipeline is encode-only.  Its output carries no header, so the packed
// bytes cannot be decoded without the primary index and original length
// from the same run.
//
// Every intermediate artifact is handed to an Observer between stages; the
// stages themselves never print anything.
package blocksort
