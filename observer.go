package blocksort

import (
	"github.com/chronos-tachyon/blocksort/bwt"
	"github.com/chronos-tachyon/blocksort/huffman"
)

// Observer receives the artifacts of a pipeline run as they are produced.
// Observers must not modify the slices they are given.
type Observer interface {
	// Input is called with the original text and the sentinel-terminated
	// buffer derived from it.
	Input(text string, buf []rune)

	// BWT is called with the transform's input buffer and its result.
	BWT(buf []rune, res bwt.Result)

	// MTFStep is called once per symbol of the last column.
	MTFStep(step MTFStep)

	// MTF is called with the starting alphabet and the finished output.
	MTF(alphabet []rune, out []int)

	// Huffman is called with the result of the entropy coding stage.
	Huffman(res huffman.Result)
}

// MTFStep describes the recoding of one symbol.
type MTFStep struct {
	Pos    int
	Symbol rune
	Before []rune
	Index  int
	After  []rune
}

// NopObserver ignores every artifact.
type NopObserver struct{}

func (NopObserver) Input(string, []rune)   {}
func (NopObserver) BWT([]rune, bwt.Result) {}
func (NopObserver) MTFStep(MTFStep)        {}
func (NopObserver) MTF([]rune, []int)      {}
func (NopObserver) Huffman(huffman.Result) {}

var _ Observer = NopObserver{}

// stepObserver is implemented by observers that want MTFStep calls.  Runs
// whose observer lacks it skip the per-step recency-list snapshots.
type stepObserver interface {
	WantsMTFSteps() bool
}

func wantsSteps(obs Observer) bool {
	if so, ok := obs.(stepObserver); ok {
		return so.WantsMTFSteps()
	}
	_, isNop := obs.(NopObserver)
	return !isNop
}
