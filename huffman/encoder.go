package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownSymbol is returned when asked to encode a byte that has no code.
var ErrUnknownSymbol = errors.New("symbol has no Huffman code")

// Encoder implements an encoder for greedy Huffman codes.
type Encoder struct {
	tree    Tree
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the frequency (i.e. number of
// occurrences) of each byte value.  Byte values with a frequency of 0 get no
// code.  If every frequency is 0, the Encoder is left with no codes at all.
func (e *Encoder) Init(freq *Frequencies) {
	tree := BuildTree(freq)

	*e = Encoder{tree: tree}

	var hasMinMax bool
	tree.Walk(func(leaf *Leaf, path Code) {
		e.codes[leaf.Symbol] = path

		size := path.Size
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	})
}

// Encode returns the code for a symbol.  The zero Code is returned for
// symbols that have no code.
func (e *Encoder) Encode(symbol byte) Code {
	return e.codes[symbol]
}

// EncodeBytes replaces each byte of data with its code and concatenates the
// results.
func (e *Encoder) EncodeBytes(data []byte) (BitString, error) {
	var w bitWriter
	w.init(len(data) * int(e.maxSize))
	for index, symbol := range data {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			return BitString{}, fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, symbol, index)
		}
		w.writeCode(hc)
	}
	return w.finish(), nil
}

// Root returns the root of the code tree, or nil if there are no symbols.
func (e *Encoder) Root() Node {
	return e.tree.Root
}

// Tree returns the code tree and its construction history.
func (e *Encoder) Tree() Tree {
	return e.tree
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// CodeTable returns the code of every symbol that has one, ascending by
// symbol.
func (e *Encoder) CodeTable() CodeTable {
	table := make(CodeTable, 0, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc := e.codes[symbol]; hc.Size != 0 {
			table = append(table, CodeEntry{Symbol: byte(symbol), Code: hc})
		}
	}
	return table
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, entry := range e.CodeTable() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Result holds every artifact of one Huffman encoding run.
type Result struct {
	Frequencies Frequencies
	Tree        Tree
	Codes       CodeTable
	Bits        BitString
	Packed      []byte
	PadBits     int
}

// Encode counts the byte frequencies of data, builds a code for them,
// encodes data and packs the resulting bits.  Empty data yields an empty
// packed sequence with no pad bits.
func Encode(data []byte) (Result, error) {
	freq := CountFrequencies(data)

	var e Encoder
	e.Init(&freq)

	bits, err := e.EncodeBytes(data)
	if err != nil {
		return Result{}, err
	}

	packed, padBits := bits.Pack()
	return Result{
		Frequencies: freq,
		Tree:        e.Tree(),
		Codes:       e.CodeTable(),
		Bits:        bits,
		Packed:      packed,
		PadBits:     padBits,
	}, nil
}
