// blocksort - BWT + MTF + Huffman demonstration tool
//
// Usage:
//
//	blocksort [flags]              Read text from stdin
//	blocksort -text STRING         Encode STRING
//	blocksort -f FILE              Encode the contents of FILE
//
// By default every intermediate artifact is printed.  Use -quiet to print
// only the packed result.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/chronos-tachyon/blocksort"
	"github.com/chronos-tachyon/blocksort/internal/display"
)

type options struct {
	file     string
	text     string
	hasText  bool
	sentinel int
	quiet    bool
	noSteps  bool
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "blocksort: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if opts.verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if log, err = cfg.Build(); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer func() { _ = log.Sync() }()
	}

	text, err := readInput(opts, stdin)
	if err != nil {
		return err
	}
	log.Debug("read input", zap.Int("bytes", len(text)), zap.String("file", opts.file))

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	pipelineOpts := []blocksort.Option{
		blocksort.WithSentinel(rune(opts.sentinel)),
		blocksort.WithLogger(log),
	}
	if !opts.quiet {
		n := display.NewNarrator(out)
		n.Steps = !opts.noSteps
		pipelineOpts = append(pipelineOpts, blocksort.WithObserver(n))
	}

	res, err := blocksort.New(pipelineOpts...).Run(context.Background(), text)
	if err != nil {
		return err
	}

	if opts.quiet {
		packed, padBits := res.Packed()
		fmt.Fprintf(out, "primary index: %d\n", res.BWT.PrimaryIndex)
		fmt.Fprintf(out, "pad bits: %d\n", padBits)
		fmt.Fprintf(out, "packed: %s\n", display.Hex(packed))
	}
	return out.Flush()
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("blocksort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "f", "", "read the text from `file`")
	fs.IntVar(&opts.sentinel, "sentinel", 0, "code point appended as the BWT end marker")
	fs.BoolVar(&opts.quiet, "quiet", false, "print only the packed result")
	fs.BoolVar(&opts.noSteps, "no-steps", false, "omit the per-symbol MTF trace")
	fs.BoolVar(&opts.verbose, "v", false, "log pipeline stages to stderr")
	fs.Func("text", "encode `string` instead of reading input", func(s string) error {
		opts.text = s
		opts.hasText = true
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.hasText && opts.file != "" {
		return options{}, fmt.Errorf("-text and -f are mutually exclusive")
	}
	if opts.sentinel < 0 || opts.sentinel > 0x10FFFF {
		return options{}, fmt.Errorf("-sentinel %d is not a valid code point", opts.sentinel)
	}
	return opts, nil
}

func readInput(opts options, stdin io.Reader) (string, error) {
	switch {
	case opts.hasText:
		return opts.text, nil
	case opts.file != "":
		raw, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(raw), nil
	default:
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSuffix(string(raw), "\n"), nil
	}
}
