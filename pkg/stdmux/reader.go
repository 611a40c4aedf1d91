package stdmux

import (
	"io"
	"iter"
	"log/slog"
)

// Reader splits a resident buffer into frames. It does no I/O; the caller has already
// read the whole stream into memory.
type Reader struct {
	buf    []byte
	offset int
	err    error
	logger *slog.Logger
}

// NewReader returns a Reader positioned at the start of buf. buf must not be modified
// while frames from it are in use, since frame payloads share its memory.
func NewReader(buf []byte, opts ...Option) *Reader {
	cfg := newConfig(opts)
	return &Reader{
		buf:    buf,
		logger: cfg.logger,
	}
}

// Next returns the next frame. It returns io.EOF once the input is exhausted at a frame
// boundary. Any other error is final: later calls return the same error.
func (r *Reader) Next() (Frame, error) {
	if r.err != nil {
		return Frame{}, r.err
	}

	rest := r.buf[r.offset:]
	if len(rest) == 0 {
		r.logger.Debug("end of multiplexed stream", "bytes", r.offset)
		r.err = io.EOF
		return Frame{}, r.err
	}

	header, n, err := decodeHeader(rest, r.offset)
	if err != nil {
		r.err = err
		return Frame{}, err
	}

	rest = rest[n:]
	if uint64(len(rest)) < uint64(header.Length) {
		r.err = &TruncatedPayloadError{
			Offset:    r.offset,
			Expected:  header.Length,
			Remaining: len(rest),
		}
		return Frame{}, r.err
	}

	frame := Frame{
		Stream:  header.Stream,
		Payload: rest[:header.Length:header.Length],
	}
	r.offset += n + int(header.Length)

	r.logger.Debug("read frame",
		"stream", frame.Stream,
		"length", header.Length,
		"remaining", len(r.buf)-r.offset)
	return frame, nil
}

// Offset returns the number of bytes consumed so far. After Next has returned io.EOF
// it equals the length of the input.
func (r *Reader) Offset() int {
	return r.offset
}

// Frames returns the frames of buf in input order. A decode error is yielded once with
// a zero Frame and ends the sequence.
func Frames(buf []byte, opts ...Option) iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		r := NewReader(buf, opts...)
		for {
			frame, err := r.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Frame{}, err)
				return
			}
			if !yield(frame, nil) {
				return
			}
		}
	}
}

// Demux concatenates the payloads of buf per stream. A stream that has no frame in buf
// has no entry in the result.
func Demux(buf []byte, opts ...Option) (map[StreamTag][]byte, error) {
	result := make(map[StreamTag][]byte)
	for frame, err := range Frames(buf, opts...) {
		if err != nil {
			return nil, err
		}
		result[frame.Stream] = append(result[frame.Stream], frame.Payload...)
	}
	return result, nil
}
