package stdmux

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every framing error.
	ErrMalformed = errors.New("malformed multiplexed stream")

	// ErrInvalidUTF8 is wrapped by LineDecodeError.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// TruncatedHeaderError is returned when fewer than HeaderLen bytes remain where a
// header was expected.
type TruncatedHeaderError struct {
	Offset    int // position of the incomplete header in the input
	Remaining int
}

func (e *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("truncated header at offset %d: need %d bytes, have %d", e.Offset, HeaderLen, e.Remaining)
}

func (e *TruncatedHeaderError) Unwrap() error { return ErrMalformed }

// UnrecognizedStreamError is returned when the stream id byte is neither 1 nor 2.
type UnrecognizedStreamError struct {
	Offset int
	Stream byte
}

func (e *UnrecognizedStreamError) Error() string {
	return fmt.Sprintf("unrecognized stream id %d (0x%02x) at offset %d", e.Stream, e.Stream, e.Offset)
}

func (e *UnrecognizedStreamError) Unwrap() error { return ErrMalformed }

// TruncatedPayloadError is returned when a header announces more payload bytes than
// the input still holds.
type TruncatedPayloadError struct {
	Offset    int // position of the frame header
	Expected  uint32
	Remaining int
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("truncated payload at offset %d: header wants %d bytes but only %d left", e.Offset, e.Expected, e.Remaining)
}

func (e *TruncatedPayloadError) Unwrap() error { return ErrMalformed }

// LineDecodeError is returned when an assembled line is not valid UTF-8.
type LineDecodeError struct {
	Line  int    // 1-based line number within the selected stream
	Bytes []byte // the undecodable line, without newline
	Index int    // index of the first invalid byte in Bytes
}

func (e *LineDecodeError) Error() string {
	return fmt.Sprintf("line %d: invalid utf-8 at byte %d: %q", e.Line, e.Index, e.Bytes)
}

func (e *LineDecodeError) Unwrap() error { return ErrInvalidUTF8 }
