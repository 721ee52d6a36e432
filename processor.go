package huffman

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
)

// Debug levels for Processor.DebugLevel.
const (
	// DebugLow logs the header and body sizes of every call.
	DebugLow = 1

	// DebugHigh also logs the frequency and code tables.
	DebugHigh = 4
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Processor compresses and decompresses streams in the tree-based Huffman
// format.  The zero value is ready to use and logs nothing.
type Processor struct {
	// Logger receives debugging output.  If nil, nothing is logged.
	Logger *slog.Logger

	// DebugLevel selects how much is logged; see DebugLow and DebugHigh.
	DebugLevel int
}

func (p Processor) logger() *slog.Logger {
	if p.Logger == nil || p.DebugLevel < DebugLow {
		return discardLogger
	}
	return p.Logger
}

func (p Processor) dump(msg string, dumper interface {
	Dump(io.Writer) (int64, error)
}) {
	if p.DebugLevel < DebugHigh {
		return
	}
	var sb strings.Builder
	_, _ = dumper.Dump(&sb)
	p.logger().Debug(msg, slog.String("dump", sb.String()))
}

// Compress reads in twice, once to count symbol frequencies and once to
// encode it, and writes the magic number, tree header, and body to out.
// out is closed before Compress returns, whether or not it succeeds.
func (p Processor) Compress(in RewindableBitReader, out BitWriter) (err error) {
	w := &countingWriter{w: out}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = ioError(PhaseFinalize, closeErr, "close output")
		}
	}()

	freq, err := CountFrequencies(in)
	if err != nil {
		return err
	}
	if err := in.Rewind(); err != nil {
		return ioError(PhaseCount, err, "rewind input")
	}
	p.dump("frequencies", freq)

	t := BuildTree(freq)
	var e Encoder
	e.Init(t)
	p.dump("codes", e.Codes())

	if err := w.WriteBits(MagicNumber, MagicBits); err != nil {
		return ioError(PhaseMagic, err, "write magic number")
	}
	if err := WriteTree(w, t); err != nil {
		return err
	}
	headerBits := w.n

	n, err := e.EncodeStream(in, w)
	if err != nil {
		return err
	}

	p.logger().Info("compressed",
		slog.Int64("literals", n),
		slog.Uint64("headerBits", headerBits),
		slog.Uint64("bitsWritten", w.n))
	return nil
}

// Decompress checks the magic number, reads the tree header, and decodes
// the body of in until the end-of-stream code, writing the literals to out.
// out is closed before Decompress returns, whether or not it succeeds.
func (p Processor) Decompress(in BitReader, out BitWriter) (err error) {
	r := &countingReader{r: in}
	w := &countingWriter{w: out}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = ioError(PhaseFinalize, closeErr, "close output")
		}
	}()

	magic, err := r.ReadBits(MagicBits)
	if err != nil {
		if isEndOfBits(err) {
			return formatError(BadMagicNumberError, PhaseMagic, "missing magic number")
		}
		return ioError(PhaseMagic, err, "read magic number")
	}
	if magic != MagicNumber {
		return formatError(BadMagicNumberError, PhaseMagic, "got %#08x, expected %#08x", magic, MagicNumber)
	}

	t, err := ReadTree(r)
	if err != nil {
		return err
	}
	headerBits := r.n
	p.dump("tree", t)

	var d Decoder
	d.Init(t)
	n, err := d.DecodeStream(r, w)
	if err != nil {
		return err
	}

	p.logger().Info("decompressed",
		slog.Int64("literals", n),
		slog.Uint64("headerBits", headerBits),
		slog.Uint64("bitsRead", r.n))
	return nil
}

// Compress compresses in to out with a zero Processor.
func Compress(in RewindableBitReader, out BitWriter) error {
	return Processor{}.Compress(in, out)
}

// Decompress decompresses in to out with a zero Processor.
func Decompress(in BitReader, out BitWriter) error {
	return Processor{}.Decompress(in, out)
}

// CompressBytes returns the compressed form of data.
func CompressBytes(data []byte) ([]byte, error) {
	in, err := NewSeekingBitReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Compress(in, NewBitWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the original form of compressed data.  On error,
// it also returns whatever literals were decoded before the failure.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := Decompress(NewBitReader(bytes.NewReader(data)), NewBitWriter(&buf))
	return buf.Bytes(), err
}
