package huffman

import (
	"github.com/pkg/errors"
)

// ErrorKind classifies the ways a compress or decompress call can fail.
// Each ErrorKind is itself an error, so callers can test for one with
// errors.Is(err, huffman.CorruptBodyError).
type ErrorKind byte

const (
	// IOError means the underlying stream failed for a reason other than
	// a clean end of stream.
	IOError ErrorKind = iota + 1

	// BadMagicNumberError means the input did not start with MagicNumber.
	BadMagicNumberError

	// CorruptHeaderError means the tree header was truncated or malformed.
	CorruptHeaderError

	// CorruptBodyError means the body ended before the sentinel code.
	CorruptBodyError
)

var kindNames = [...]string{
	IOError:             "I/O error",
	BadMagicNumberError: "bad magic number",
	CorruptHeaderError:  "corrupt tree header",
	CorruptBodyError:    "corrupt body",
}

// String returns a human-readable name for the kind.
func (kind ErrorKind) String() string {
	if int(kind) < len(kindNames) && kindNames[kind] != "" {
		return kindNames[kind]
	}
	return "unknown error"
}

// Error fulfills the error interface.
func (kind ErrorKind) Error() string {
	return "huffman: " + kind.String()
}

// Phase identifies the stage of processing that failed.
type Phase string

const (
	PhaseCount    Phase = "frequency count"
	PhaseMagic    Phase = "magic number"
	PhaseHeader   Phase = "tree header"
	PhaseBody     Phase = "body"
	PhaseFinalize Phase = "finalize"
)

// Error is the concrete type of every error returned by Compress and
// Decompress.
type Error struct {
	Kind  ErrorKind
	Phase Phase
	Err   error
}

// Error fulfills the error interface.
func (e *Error) Error() string {
	s := "huffman: " + string(e.Phase) + ": " + e.Kind.String()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an ErrorKind target against e.Kind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

var _ error = (*Error)(nil)

func ioError(phase Phase, err error, msg string) error {
	return &Error{Kind: IOError, Phase: phase, Err: errors.Wrap(err, msg)}
}

func formatError(kind ErrorKind, phase Phase, format string, args ...interface{}) error {
	return &Error{Kind: kind, Phase: phase, Err: errors.Errorf(format, args...)}
}
