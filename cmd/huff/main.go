// Command huff compresses and decompresses files in the tree-based Huffman
// format.
//
// Usage:
//
//	huff [-d] [-v level] [-o output] input
//
// Without -o, compressing writes input+".hf", and decompressing writes
// input with ".hf" removed, or input+".uhf" if it has no ".hf" suffix.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/hufftree"
)

const (
	compressedSuffix   = ".hf"
	decompressedSuffix = ".uhf"
)

func main() {
	var (
		decompress = flag.Bool("d", false, "decompress instead of compress")
		output     = flag.String("o", "", "output file path")
		debugLevel = flag.Int("v", 0, fmt.Sprintf("debug level (%d = sizes, %d = tables)", huffman.DebugLow, huffman.DebugHigh))
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-d] [-v level] [-o output] input\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *debugLevel >= huffman.DebugHigh {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	input := flag.Arg(0)
	outPath := *output
	if outPath == "" {
		outPath = defaultOutputPath(input, *decompress)
	}

	p := huffman.Processor{Logger: logger, DebugLevel: *debugLevel}
	if err := run(p, input, outPath, *decompress); err != nil {
		logger.Error("failed", slog.String("input", input), slog.String("output", outPath), slog.Any("err", err))
		os.Exit(1)
	}
}

func defaultOutputPath(input string, decompress bool) string {
	if !decompress {
		return input + compressedSuffix
	}
	if trimmed := strings.TrimSuffix(input, compressedSuffix); trimmed != input && trimmed != "" {
		return trimmed
	}
	return input + decompressedSuffix
}

func run(p huffman.Processor, inPath, outPath string, decompress bool) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.WithStack(closeErr)
		}
	}()

	if decompress {
		return p.Decompress(huffman.NewBitReader(in), huffman.NewBitWriter(out))
	}

	br, err := huffman.NewSeekingBitReader(in)
	if err != nil {
		return err
	}
	return p.Compress(br, huffman.NewBitWriter(out))
}
