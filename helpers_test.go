package huffman

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

var errTest = errors.New("test failure")

// bitString is a BitReader over a string of '0' and '1' characters that
// reports io.EOF as soon as fewer than n bits remain.
type bitString struct {
	s string
}

func (r *bitString) ReadBits(n uint8) (uint64, error) {
	if int(n) > len(r.s) {
		r.s = ""
		return 0, io.EOF
	}
	var u uint64
	for _, ch := range r.s[:n] {
		u = (u << 1) | uint64(ch-'0')
	}
	r.s = r.s[n:]
	return u, nil
}

// bitRecorder is a BitWriter that records every bit written as '0' or '1'.
type bitRecorder struct {
	sb     strings.Builder
	writes []Code
	closed int
}

func (w *bitRecorder) WriteBits(r uint64, n uint8) error {
	hc := MakeCode(n, r)
	w.writes = append(w.writes, hc)
	for i := byte(0); i < n; i++ {
		w.sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return nil
}

func (w *bitRecorder) Close() error {
	w.closed++
	return nil
}

func (w *bitRecorder) String() string {
	return w.sb.String()
}

// failingReader is a RewindableBitReader whose reads or rewinds fail.
type failingReader struct {
	BitReader
	failRead   bool
	failRewind bool
}

func (r *failingReader) ReadBits(n uint8) (uint64, error) {
	if r.failRead {
		return 0, errTest
	}
	return r.BitReader.ReadBits(n)
}

func (r *failingReader) Rewind() error {
	if r.failRewind {
		return errTest
	}
	return nil
}

// failingWriter is a BitWriter whose writes or close fail.
type failingWriter struct {
	failWrite bool
	failClose bool
	closed    int
}

func (w *failingWriter) WriteBits(r uint64, n uint8) error {
	if w.failWrite {
		return errTest
	}
	return nil
}

func (w *failingWriter) Close() error {
	w.closed++
	if w.failClose {
		return errTest
	}
	return nil
}

func countBytes(data string) *FrequencyTable {
	freq, err := CountFrequencies(NewBitReader(strings.NewReader(data)))
	if err != nil {
		panic(err)
	}
	return freq
}
