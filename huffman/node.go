package huffman

import (
	"fmt"
)

// Node is a node in a Huffman code tree.  It is either a *Leaf or an
// *Internal; no other implementations exist.
type Node interface {
	// Frequency returns the total number of occurrences of the symbols
	// beneath this node.
	Frequency() uint64

	fmt.Stringer

	isNode()
}

// Leaf is a Node that carries a single symbol.
type Leaf struct {
	Symbol byte
	Freq   uint64
}

// Internal is a Node that owns exactly two children.  Its frequency is the
// sum of its children's frequencies.
type Internal struct {
	Freq  uint64
	Left  Node
	Right Node
}

// Frequency implements Node.
func (leaf *Leaf) Frequency() uint64 {
	return leaf.Freq
}

// Frequency implements Node.
func (node *Internal) Frequency() uint64 {
	return node.Freq
}

// String returns a short description of this leaf.
func (leaf *Leaf) String() string {
	return fmt.Sprintf("sym=%d freq=%d", leaf.Symbol, leaf.Freq)
}

// String returns a short description of this internal node.
func (node *Internal) String() string {
	return fmt.Sprintf("inner freq=%d", node.Freq)
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

func newInternal(left, right Node) *Internal {
	return &Internal{
		Freq:  left.Frequency() + right.Frequency(),
		Left:  left,
		Right: right,
	}
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
