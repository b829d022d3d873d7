package display

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/blocksort"
	"github.com/chronos-tachyon/blocksort/bwt"
	"github.com/chronos-tachyon/blocksort/huffman"
)

const banner = "===================="

// Narrator prints every artifact of a pipeline run as it arrives.
type Narrator struct {
	W io.Writer

	// Steps enables the per-symbol MTF trace.
	Steps bool
}

// NewNarrator returns a Narrator writing to w with the MTF trace enabled.
func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{W: w, Steps: true}
}

func (n *Narrator) printf(format string, args ...interface{}) {
	fmt.Fprintf(n.W, format, args...)
}

func (n *Narrator) section(num int, title string) {
	n.printf("\n%s\n%d: %s\n%s\n", banner, num, title, banner)
}

// Input implements blocksort.Observer.
func (n *Narrator) Input(text string, buf []rune) {
	n.printf("\n--- Original text ---\n%s\nLength: %d\n", text, len(buf)-1)
}

// BWT implements blocksort.Observer.
func (n *Narrator) BWT(buf []rune, res bwt.Result) {
	n.section(1, "Burrows-Wheeler transform (BWT)")
	n.printf("BWT input: \"%s\"\n", EscapeString(buf))

	n.printf("\n-- Rotations --\n")
	for shift := range buf {
		n.printf("%2d: \"%s\"\n", shift, EscapeString(bwt.Rotation(buf, shift)))
	}

	n.printf("\n-- Sorted rotations --\n")
	for row, shift := range res.Order {
		n.printf("%2d: (rot#%2d) \"%s\"  last='%s'\n",
			row, shift, EscapeString(bwt.Rotation(buf, shift)), EscapeRune(res.LastColumn[row]))
	}

	n.printf("\n--- BWT result ---\n")
	n.printf("Last column L: \"%s\"\n", EscapeString(res.LastColumn))
	n.printf("Primary index: %d\n", res.PrimaryIndex)
}

// WantsMTFSteps reports whether MTFStep output is enabled.
func (n *Narrator) WantsMTFSteps() bool {
	return n.Steps
}

// MTFStep implements blocksort.Observer.
func (n *Narrator) MTFStep(step blocksort.MTFStep) {
	if step.Pos == 0 {
		n.section(2, "Move-to-front (MTF)")
		n.printf("Alphabet: %s\n", FormatRunes(step.Before))
		n.printf("\n-- MTF step by step --\n")
	}
	n.printf("\nPos %2d: '%s'\n", step.Pos, EscapeRune(step.Symbol))
	n.printf("  List before: %s\n", FormatRunes(step.Before))
	n.printf("  Index = %d\n", step.Index)
	n.printf("  List after: %s\n", FormatRunes(step.After))
}

// MTF implements blocksort.Observer.
func (n *Narrator) MTF(alphabet []rune, out []int) {
	if !n.Steps {
		n.section(2, "Move-to-front (MTF)")
		n.printf("Alphabet: %s\n", FormatRunes(alphabet))
	}
	n.printf("\n--- MTF result ---\n")
	n.printf("Indices: %s\n", FormatInts(out))
	hex := make([]byte, len(out))
	for i, v := range out {
		hex[i] = byte(v)
	}
	n.printf("Hex: %s\n", Hex(hex))
}

// Huffman implements blocksort.Observer.
func (n *Narrator) Huffman(res huffman.Result) {
	n.section(3, "Huffman coding")

	n.printf("\n-- Frequencies --\n")
	for _, symbol := range res.Frequencies.Symbols() {
		n.printf("Symbol %3d: %d\n", symbol, res.Frequencies[symbol])
	}

	n.printf("\n-- Tree construction --\n")
	for step, m := range res.Tree.Merges {
		n.printf("Step %d: combine (%s) + (%s)\n", step, m.Left, m.Right)
	}

	n.printf("\n-- Code table --\n")
	_, _ = res.Codes.Dump(n.W)

	n.printf("\n-- Bit string --\n%s\n", res.Bits)
	n.printf("\nPacked (padBits=%d):\nHex: %s\n", res.PadBits, Hex(res.Packed))
}

var _ blocksort.Observer = (*Narrator)(nil)
