package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

var (
	// ErrInvalidPadding is returned by Unpack when the pad-bit count does
	// not describe the packed bytes.
	ErrInvalidPadding = errors.New("invalid pad bits")

	// ErrInvalidDigit is returned by ParseBitString for characters other
	// than '0' and '1'.
	ErrInvalidDigit = errors.New("invalid bit digit")
)

// BitString is an immutable sequence of bits, stored packed
// most-significant-bit first with the unused low bits of the last byte
// cleared.
type BitString struct {
	data []byte
	size int
}

// Len returns the number of bits.
func (bs BitString) Len() int {
	return bs.size
}

// PadBits returns how many zero bits Pack appends to reach a byte boundary.
func (bs BitString) PadBits() int {
	return (8 - bs.size%8) % 8
}

// Pack returns the bits grouped into bytes, most significant bit first,
// padded on the right with zero bits, together with the number of pad bits.
func (bs BitString) Pack() (packed []byte, padBits int) {
	packed = make([]byte, len(bs.data))
	copy(packed, bs.data)
	return packed, bs.PadBits()
}

// Bit returns the bit at index i.
func (bs BitString) Bit(i int) uint {
	if i < 0 || i >= bs.size {
		panic(fmt.Errorf("BitString.Bit: index %d out of range [0, %d)", i, bs.size))
	}
	return uint(bs.data[i>>3]>>(7-uint(i&7))) & 1
}

// String returns the bits as a string of '0' and '1'.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(bs.size)
	r := bitio.NewReader(bytes.NewReader(bs.data))
	for i := 0; i < bs.size; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			panic(fmt.Errorf("BitString.String: %w", err))
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Equal reports whether two bit strings hold the same bits.
func (bs BitString) Equal(other BitString) bool {
	return bs.size == other.size && bytes.Equal(bs.data, other.data)
}

var _ fmt.Stringer = BitString{}

// ParseBitString parses a string of '0' and '1' characters.
func ParseBitString(s string) (BitString, error) {
	var w bitWriter
	w.init(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			w.writeCode(MakeCode(1, 0))
		case '1':
			w.writeCode(MakeCode(1, 1))
		default:
			return BitString{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, s[i], i)
		}
	}
	return w.finish(), nil
}

// Unpack reverses Pack: it strips padBits trailing zero bits from packed.
func Unpack(packed []byte, padBits int) (BitString, error) {
	if padBits < 0 || padBits >= 8 {
		return BitString{}, fmt.Errorf("%w: %d not in [0, 8)", ErrInvalidPadding, padBits)
	}
	if len(packed) == 0 {
		if padBits != 0 {
			return BitString{}, fmt.Errorf("%w: %d pad bits with no packed bytes", ErrInvalidPadding, padBits)
		}
		return BitString{}, nil
	}

	mask := byte(1)<<uint(padBits) - 1
	if last := packed[len(packed)-1]; last&mask != 0 {
		return BitString{}, fmt.Errorf("%w: pad bits of final byte %02X are not zero", ErrInvalidPadding, last)
	}

	data := make([]byte, len(packed))
	copy(data, packed)
	return BitString{data: data, size: len(packed)*8 - padBits}, nil
}

// bitWriter accumulates codes into a BitString.
type bitWriter struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size int
}

func (bw *bitWriter) init(sizeHint int) {
	bw.buf.Grow((sizeHint + 7) / 8)
	bw.w = bitio.NewWriter(&bw.buf)
}

func (bw *bitWriter) writeCode(hc Code) {
	// bytes.Buffer never fails a write, so neither does bitio.
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		panic(fmt.Errorf("bitio.Writer.WriteBits: %w", err))
	}
	bw.size += int(hc.Size)
}

func (bw *bitWriter) finish() BitString {
	if err := bw.w.Close(); err != nil {
		panic(fmt.Errorf("bitio.Writer.Close: %w", err))
	}
	return BitString{data: bw.buf.Bytes(), size: bw.size}
}
