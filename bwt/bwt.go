// Package bwt implements the forward Burrows-Wheeler transform over
// sentinel-terminated sequences of code points.
package bwt

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// DefaultSentinel is the end marker appended by AppendSentinel callers that
// have no better choice.  It sorts before every other code point.
const DefaultSentinel = '\x00'

// ErrInvalidInput is returned by Transform when the final element of the
// buffer, the sentinel, also occurs earlier in the buffer.
var ErrInvalidInput = errors.New("invalid BWT input")

// Result is the output of the transform.
type Result struct {
	// LastColumn holds the final element of each rotation, in sorted
	// rotation order.
	LastColumn []rune

	// PrimaryIndex is the sorted position of the unrotated buffer.
	PrimaryIndex int

	// Order holds, for each sorted position, the shift of the rotation
	// found there.
	Order []int
}

// AppendSentinel converts text to code points and appends sentinel.
func AppendSentinel(text string, sentinel rune) []rune {
	buf := make([]rune, 0, len(text)+1)
	for _, ch := range text {
		buf = append(buf, ch)
	}
	return append(buf, sentinel)
}

// Transform computes the Burrows-Wheeler transform of buf, whose last
// element is taken to be the sentinel.  The sentinel must not occur anywhere
// else in buf; if it does, Transform returns an error wrapping
// ErrInvalidInput.
//
// An empty buf yields an empty last column and a primary index of 0.
func Transform(buf []rune) (Result, error) {
	if n := len(buf); n > 1 {
		sentinel := buf[n-1]
		for i, ch := range buf[:n-1] {
			if ch == sentinel {
				return Result{}, fmt.Errorf("%w: sentinel %U also occurs at position %d of %d", ErrInvalidInput, sentinel, i, n)
			}
		}
	}
	return TransformUnchecked(buf), nil
}

// TransformUnchecked is Transform without the sentinel check.  It is the
// caller's obligation to ensure that the last element of buf occurs nowhere
// else; otherwise equal rotations are ordered by shift and PrimaryIndex may
// not identify the original buffer uniquely.
func TransformUnchecked(buf []rune) Result {
	n := len(buf)
	if n == 0 {
		return Result{LastColumn: []rune{}, Order: []int{}}
	}

	s := newRotationSort(buf)
	sort.Sort(s)

	lastColumn := make([]rune, n)
	primaryIndex := -1
	for row, shift := range s.perm {
		if shift == 0 {
			primaryIndex = row
		}
		lastColumn[row] = buf[(shift+n-1)%n]
	}

	assert.Assertf(primaryIndex >= 0, "no sorted row holds the unrotated buffer (n=%d)", n)

	return Result{
		LastColumn:   lastColumn,
		PrimaryIndex: primaryIndex,
		Order:        s.perm,
	}
}

// Rotation returns buf cyclically shifted left by shift positions.
func Rotation(buf []rune, shift int) []rune {
	n := len(buf)
	out := make([]rune, 0, n)
	if n == 0 {
		return out
	}
	shift %= n
	out = append(out, buf[shift:]...)
	return append(out, buf[:shift]...)
}

// rotationSort implements sort.Interface over a permutation of rotation
// shifts.  Rotations are compared element by element without being
// materialized.
type rotationSort struct {
	base []rune
	perm []int
}

func newRotationSort(buf []rune) *rotationSort {
	s := &rotationSort{base: buf, perm: make([]int, len(buf))}
	for i := range s.perm {
		s.perm[i] = i
	}
	return s
}

func (s *rotationSort) Len() int {
	return len(s.perm)
}

func (s *rotationSort) Swap(i, j int) {
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
}

func (s *rotationSort) Less(i, j int) bool {
	n := len(s.base)
	xi, xj := s.perm[i], s.perm[j]
	for k := 0; k < n; k++ {
		bi, bj := s.base[xi], s.base[xj]
		if bi != bj {
			return bi < bj
		}
		if xi++; xi == n {
			xi = 0
		}
		if xj++; xj == n {
			xj = 0
		}
	}
	return s.perm[i] < s.perm[j]
}

var _ sort.Interface = (*rotationSort)(nil)
