package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree together with the sequence of merges that
// built it.
type Tree struct {
	// Root is the root of the tree.  It is nil if the tree was built from
	// an empty frequency table, and a *Leaf if only one symbol occurred.
	Root Node

	// Merges lists the combination steps in the order they happened.
	Merges []Merge
}

// Merge records one step of tree construction: the two lowest-ranked nodes
// Left and Right were removed and replaced by Parent.
type Merge struct {
	Left   Node
	Right  Node
	Parent *Internal
}

// BuildTree builds a Huffman code tree for the symbols with a non-zero
// frequency.
//
// Nodes are ranked by frequency.  Among equal frequencies, leaves rank by
// ascending byte value, and internal nodes rank after all leaves, oldest
// first.  The lower-ranked of the two nodes chosen at each step becomes the
// left child.
func BuildTree(freq *Frequencies) Tree {
	// Step 1: build a minheap with one leaf per present symbol.

	items := make([]nodeAndKey, 0, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if f := freq[symbol]; f != 0 {
			leaf := &Leaf{Symbol: byte(symbol), Freq: f}
			items = append(items, nodeAndKey{leaf, uint32(symbol)})
		}
	}

	if len(items) == 0 {
		return Tree{}
	}

	h := freqHeap{items}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.
	//
	// Internal nodes are distinguished from leaves by their key: leaf keys
	// are the byte values 0..255, while the k'th internal node gets the
	// key firstInternalKey+k.  This makes every internal node rank after
	// every leaf of equal frequency, and older internal nodes rank before
	// newer ones.

	merges := make([]Merge, 0, len(items)-1)
	nextKey := uint32(firstInternalKey)

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndKey)
		b := heap.Pop(&h).(nodeAndKey)

		parent := newInternal(a.node, b.node)
		merges = append(merges, Merge{Left: a.node, Right: b.node, Parent: parent})
		heap.Push(&h, nodeAndKey{parent, nextKey})
		nextKey++
	}

	assert.Assertf(len(merges) == len(items)-1, "%d leaves produced %d merges", len(items), len(merges))

	root := heap.Pop(&h).(nodeAndKey)
	return Tree{Root: root.node, Merges: merges}
}

// Walk visits every leaf of the tree in pre-order (left before right),
// passing the leaf and the path from the root to it.  A tree whose root is
// itself a leaf yields the one-bit code "0" for that leaf, since an empty
// path is not a usable code.
func (t Tree) Walk(fn func(leaf *Leaf, path Code)) {
	if t.Root == nil {
		return
	}
	if leaf, ok := t.Root.(*Leaf); ok {
		fn(leaf, MakeCode(1, 0))
		return
	}

	// Use a stack to walk the tree.  The stack never holds leaves, only
	// internal nodes, so its depth is bounded by the longest code.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	processChild := func(child Node, path Code) {
		switch n := child.(type) {
		case *Leaf:
			fn(n, path)
		case *Internal:
			stack = append(stack, stackItem{node: n, path: path})
		}
	}

	stack = append(stack, stackItem{node: t.Root.(*Internal)})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.path.Append(0))
		case 1:
			processChild(top.node.Right, top.path.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

const firstInternalKey = 1 << 31

// type nodeAndKey + type freqHeap {{{

type nodeAndKey struct {
	node Node
	key  uint32
}

type freqHeap struct {
	list []nodeAndKey
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := a.node.Frequency(), b.node.Frequency()
	if af != bf {
		return af < bf
	}
	return a.key < b.key
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndKey))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndKey{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
