package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrNotPrefixFree is returned by CheckPrefixFree when one code is a prefix
// of another.
var ErrNotPrefixFree = errors.New("code table is not prefix-free")

// CodeEntry pairs a symbol with its code.
type CodeEntry struct {
	Symbol byte
	Code   Code
}

// CodeTable lists the code assigned to each symbol, ascending by symbol.
type CodeTable []CodeEntry

// Lookup returns the code for symbol, if it has one.
func (table CodeTable) Lookup(symbol byte) (Code, bool) {
	i := sort.Search(len(table), func(i int) bool {
		return table[i].Symbol >= symbol
	})
	if i < len(table) && table[i].Symbol == symbol {
		return table[i].Code, true
	}
	return Code{}, false
}

// Map returns the table as a map from symbol to its code's '0'/'1' digits.
func (table CodeTable) Map() map[byte]string {
	out := make(map[byte]string, len(table))
	for _, entry := range table {
		out[entry.Symbol] = entry.Code.Digits()
	}
	return out
}

// CheckPrefixFree verifies that no code in the table is a prefix of another
// code, and that no two symbols share a code.
//
// Each code marks itself and all of its proper prefixes in a table keyed by
// Code.  A code that lands on a mark left by another symbol, or whose own
// prefix is a complete code, breaks the prefix property.
func (table CodeTable) CheckPrefixFree() error {
	type mark struct {
		symbol byte
		full   bool
	}

	seen := make(map[Code]mark, len(table)*2)

	// Visit longer codes first, so that a shorter code is always checked
	// against the prefixes its longer neighbors have already marked.
	sorted := make(byCode, len(table))
	for i, entry := range table {
		sorted[i] = entry
	}
	sorted.Sort()

	for _, entry := range sorted {
		hc := entry.Code
		if hc.Size == 0 {
			return fmt.Errorf("%w: symbol %d has an empty code", ErrNotPrefixFree, entry.Symbol)
		}
		if m, found := seen[hc]; found {
			return fmt.Errorf("%w: code %s of symbol %d is a prefix of symbol %d's code", ErrNotPrefixFree, hc, entry.Symbol, m.symbol)
		}
		seen[hc] = mark{entry.Symbol, true}

		for hc.Size > 1 {
			hc.Size--
			hc.Bits >>= 1
			if m, found := seen[hc]; found && m.full {
				return fmt.Errorf("%w: code %s of symbol %d is a prefix of symbol %d's code", ErrNotPrefixFree, hc, m.symbol, entry.Symbol)
			} else if found {
				break
			}
			seen[hc] = mark{entry.Symbol, false}
		}
	}
	return nil
}

// String returns the table in "symbol -> digits" form, one entry per line.
func (table CodeTable) String() string {
	var buf bytes.Buffer
	_, _ = table.Dump(&buf)
	return buf.String()
}

// Dump writes the table in "symbol -> digits" form to the given writer.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, entry := range table {
		fmt.Fprintf(&buf, "Symbol %3d -> %s\n", entry.Symbol, entry.Code.Digits())
	}
	return buf.WriteTo(w)
}

// type byCode {{{

// byCode sorts entries by descending code length, then ascending bits.
type byCode []CodeEntry

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].Code, list[j].Code
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as > bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
