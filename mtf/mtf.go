// Package mtf implements move-to-front recoding over an explicit, ordered
// alphabet of code points.
package mtf

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvariantViolation is returned when a symbol or index does not fit the
// recency list, which means the alphabet was not derived from the input.
var ErrInvariantViolation = errors.New("move-to-front invariant violated")

// Alphabet returns the distinct symbols of symbols, ascending by code point.
func Alphabet(symbols []rune) []rune {
	seen := make(map[rune]struct{}, 64)
	out := make([]rune, 0, 64)
	for _, ch := range symbols {
		if _, found := seen[ch]; !found {
			seen[ch] = struct{}{}
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Encoder holds a recency list.  Each encoded symbol moves to the front.
type Encoder struct {
	list []rune
}

// NewEncoder returns an Encoder whose recency list starts as a copy of
// alphabet.
func NewEncoder(alphabet []rune) *Encoder {
	list := make([]rune, len(alphabet))
	copy(list, alphabet)
	return &Encoder{list: list}
}

// Encode returns the current position of sym in the recency list, then
// moves sym to the front.
func (e *Encoder) Encode(sym rune) (int, error) {
	pos := -1
	for i, ch := range e.list {
		if ch == sym {
			pos = i
			break
		}
	}
	if pos < 0 {
		return -1, fmt.Errorf("%w: symbol %U is not in the alphabet", ErrInvariantViolation, sym)
	}
	moveToFront(e.list, pos)
	return pos, nil
}

// Decode returns the symbol at position pos of the recency list, then moves
// it to the front.
func (e *Encoder) Decode(pos int) (rune, error) {
	if pos < 0 || pos >= len(e.list) {
		return 0, fmt.Errorf("%w: index %d outside recency list of %d symbols", ErrInvariantViolation, pos, len(e.list))
	}
	sym := e.list[pos]
	moveToFront(e.list, pos)
	return sym, nil
}

// List returns a copy of the current recency list.
func (e *Encoder) List() []rune {
	out := make([]rune, len(e.list))
	copy(out, e.list)
	return out
}

func moveToFront(list []rune, pos int) {
	sym := list[pos]
	copy(list[1:pos+1], list[:pos])
	list[0] = sym
}

// Encode recodes symbols as recency-list positions, starting from alphabet.
// The output has one entry per input symbol.
func Encode(symbols, alphabet []rune) ([]int, error) {
	e := NewEncoder(alphabet)
	out := make([]int, len(symbols))
	for i, sym := range symbols {
		pos, err := e.Encode(sym)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = pos
	}
	return out, nil
}

// Decode reverses Encode given the same starting alphabet.
func Decode(indices []int, alphabet []rune) ([]rune, error) {
	e := NewEncoder(alphabet)
	out := make([]rune, len(indices))
	for i, pos := range indices {
		sym, err := e.Decode(pos)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = sym
	}
	return out, nil
}
