package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitReader reads bits from an octet stream, most significant bit first.
//
// ReadBits returns io.EOF or io.ErrUnexpectedEOF when no more bits are
// available.  Any other error is an I/O failure.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// RewindableBitReader is a BitReader that can cheaply return to the position
// it started from.  Compression reads its input twice.
type RewindableBitReader interface {
	BitReader
	Rewind() error
}

// BitWriter writes bits to an octet stream, most significant bit first.
//
// Close pads the final byte with zero bits and flushes it.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
	Close() error
}

// NewBitReader returns a BitReader over r.
func NewBitReader(r io.Reader) *bitio.Reader {
	return bitio.NewReader(r)
}

// NewBitWriter returns a BitWriter over w.  Closing the BitWriter does not
// close w.
func NewBitWriter(w io.Writer) *bitio.Writer {
	return bitio.NewWriter(w)
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// SeekingBitReader is a RewindableBitReader over an io.ReadSeeker.
type SeekingBitReader struct {
	rs    io.ReadSeeker
	start int64
	br    *bitio.Reader
}

// NewSeekingBitReader returns a SeekingBitReader which rewinds to the current
// offset of rs.
func NewSeekingBitReader(rs io.ReadSeeker) (*SeekingBitReader, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &SeekingBitReader{rs: rs, start: start, br: bitio.NewReader(rs)}, nil
}

// ReadBits fulfills BitReader.
func (r *SeekingBitReader) ReadBits(n uint8) (uint64, error) {
	return r.br.ReadBits(n)
}

// Rewind seeks back to the starting offset and drops any buffered bits.
func (r *SeekingBitReader) Rewind() error {
	if _, err := r.rs.Seek(r.start, io.SeekStart); err != nil {
		return errors.WithStack(err)
	}
	r.br = bitio.NewReader(r.rs)
	return nil
}

var _ RewindableBitReader = (*SeekingBitReader)(nil)

// isEndOfBits returns true iff err is the "no more bits" result.
func isEndOfBits(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// maxWriteBits is the widest single write issued to a BitWriter.
const maxWriteBits = 32

// writeCode emits hc, splitting it into writes of at most maxWriteBits bits.
func writeCode(w BitWriter, hc Code) error {
	size := hc.Size
	for size > maxWriteBits {
		size -= maxWriteBits
		chunk := (hc.Bits >> size) & (1<<maxWriteBits - 1)
		if err := w.WriteBits(chunk, maxWriteBits); err != nil {
			return err
		}
	}
	return w.WriteBits(hc.Bits&(1<<size-1), size)
}

// countingReader and countingWriter tally the bits moving through them.

type countingReader struct {
	r BitReader
	n uint64
}

func (c *countingReader) ReadBits(n uint8) (uint64, error) {
	u, err := c.r.ReadBits(n)
	if err == nil {
		c.n += uint64(n)
	}
	return u, err
}

type countingWriter struct {
	w BitWriter
	n uint64
}

func (c *countingWriter) WriteBits(r uint64, n uint8) error {
	err := c.w.WriteBits(r, n)
	if err == nil {
		c.n += uint64(n)
	}
	return err
}

func (c *countingWriter) Close() error {
	return c.w.Close()
}
