package blocksort

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/blocksort/bwt"
	"github.com/chronos-tachyon/blocksort/huffman"
	"github.com/chronos-tachyon/blocksort/mtf"
)

// Result holds every artifact of one pipeline run.
type Result struct {
	// Input is the text as code points, with the sentinel appended.
	Input []rune

	BWT bwt.Result

	// Alphabet is the starting recency list of the MTF stage.
	Alphabet []rune

	// MTF holds one recency-list position per symbol of BWT.LastColumn.
	MTF []int

	// MTFBytes holds MTF reduced modulo 256, the input of the Huffman stage.
	MTFBytes []byte

	Huffman huffman.Result
}

// Packed returns the final packed bytes and the number of pad bits.
func (r Result) Packed() ([]byte, int) {
	return r.Huffman.Packed, r.Huffman.PadBits
}

// Pipeline runs BWT, MTF and Huffman coding in sequence.
type Pipeline struct {
	config Config
}

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pipeline{config: cfg}
}

// Run encodes text with a default Pipeline.
func Run(text string) (Result, error) {
	return New().Run(context.Background(), text)
}

// Run appends the sentinel to text and encodes it.  The context is only
// consulted between stages.
func (p *Pipeline) Run(ctx context.Context, text string) (Result, error) {
	obs := p.config.Observer
	log := p.config.Logger.With(zap.String("run_id", uuid.NewString()))

	var res Result
	res.Input = bwt.AppendSentinel(text, p.config.Sentinel)
	obs.Input(text, res.Input)
	log.Debug("input", zap.Int("runes", len(res.Input)), zap.Int32("sentinel", p.config.Sentinel))

	// Stage 1: Burrows-Wheeler transform.

	var err error
	if p.config.SkipSentinelCheck {
		res.BWT = bwt.TransformUnchecked(res.Input)
	} else if res.BWT, err = bwt.Transform(res.Input); err != nil {
		log.Debug("bwt failed", zap.Error(err))
		return Result{}, fmt.Errorf("bwt: %w", err)
	}
	obs.BWT(res.Input, res.BWT)
	log.Debug("bwt", zap.Int("primary_index", res.BWT.PrimaryIndex))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Stage 2: move-to-front.

	res.Alphabet = mtf.Alphabet(res.BWT.LastColumn)
	if res.MTF, err = p.runMTF(res.BWT.LastColumn, res.Alphabet); err != nil {
		log.Debug("mtf failed", zap.Error(err))
		return Result{}, fmt.Errorf("mtf: %w", err)
	}
	obs.MTF(res.Alphabet, res.MTF)
	log.Debug("mtf", zap.Int("alphabet", len(res.Alphabet)), zap.Int("symbols", len(res.MTF)))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Stage 3: Huffman coding of the MTF positions, one byte each.

	res.MTFBytes = make([]byte, len(res.MTF))
	for i, pos := range res.MTF {
		res.MTFBytes[i] = byte(pos)
	}
	if res.Huffman, err = huffman.Encode(res.MTFBytes); err != nil {
		log.Debug("huffman failed", zap.Error(err))
		return Result{}, fmt.Errorf("huffman: %w", err)
	}
	obs.Huffman(res.Huffman)
	log.Debug("huffman",
		zap.Int("codes", len(res.Huffman.Codes)),
		zap.Int("bits", res.Huffman.Bits.Len()),
		zap.Int("packed", len(res.Huffman.Packed)),
		zap.Int("pad_bits", res.Huffman.PadBits))

	return res, nil
}

func (p *Pipeline) runMTF(symbols, alphabet []rune) ([]int, error) {
	obs := p.config.Observer
	if !wantsSteps(obs) {
		return mtf.Encode(symbols, alphabet)
	}

	e := mtf.NewEncoder(alphabet)
	out := make([]int, len(symbols))
	for i, sym := range symbols {
		before := e.List()
		pos, err := e.Encode(sym)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = pos
		obs.MTFStep(MTFStep{Pos: i, Symbol: sym, Before: before, Index: pos, After: e.List()})
	}
	return out, nil
}
