package stdmux

import (
	"io"
)

// maxPayload is MaxPayloadLen, lowered in tests to exercise frame splitting.
var maxPayload uint64 = MaxPayloadLen

// AppendFrame appends payload to dst as frames of the given stream. A payload longer
// than MaxPayloadLen is split into consecutive frames. An empty payload produces one
// frame with length zero.
func AppendFrame(dst []byte, stream StreamTag, payload []byte) []byte {
	for uint64(len(payload)) > maxPayload {
		dst = Header{Stream: stream, Length: uint32(maxPayload)}.Append(dst)
		dst = append(dst, payload[:maxPayload]...)
		payload = payload[maxPayload:]
	}
	dst = Header{Stream: stream, Length: uint32(len(payload))}.Append(dst)
	return append(dst, payload...)
}

// Writer multiplexes several streams onto one io.Writer. A single goroutine owns the
// underlying writer, so StreamWriters may be used from different goroutines.
type Writer struct {
	frames chan Frame
	done   chan struct{}
	err    error
}

// NewWriter creates a Writer on w. The internal goroutine runs until Close is called.
func NewWriter(w io.Writer) *Writer {
	frames := make(chan Frame, 100)
	done := make(chan struct{})
	mw := &Writer{
		frames: frames,
		done:   done,
	}

	go func() {
		defer close(done)
		var buf []byte
		for frame := range frames {
			if mw.err != nil {
				// Keep draining so writers never block after a failure.
				continue
			}
			buf = AppendFrame(buf[:0], frame.Stream, frame.Payload)
			if _, err := w.Write(buf); err != nil {
				mw.err = err
			}
		}
	}()

	return mw
}

// StreamWriter returns an io.Writer whose writes become frames of the given stream.
// Empty writes produce no frame.
func (w *Writer) StreamWriter(stream StreamTag) io.Writer {
	return &streamWriter{
		stream: stream,
		frames: w.frames,
	}
}

// Channel returns a channel for writing Frames directly.
// Do not close the returned channel. Call Close() on the writer instead.
func (w *Writer) Channel() chan<- Frame {
	return w.frames
}

// Close waits for all pending frames to be written and returns the first write error.
// The Writer must not be used afterwards.
func (w *Writer) Close() error {
	close(w.frames)
	<-w.done
	return w.err
}

type streamWriter struct {
	stream StreamTag
	frames chan<- Frame
}

func (sw *streamWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	sw.frames <- Frame{
		Stream:  sw.stream,
		Payload: append([]byte(nil), p...), // the caller may reuse p
	}

	return len(p), nil
}
