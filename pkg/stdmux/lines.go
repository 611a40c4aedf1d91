package stdmux

import (
	"bytes"
	"iter"
	"unicode/utf8"
)

// Lines reassembles newline terminated text from the frames of one stream. Frames of
// the other stream are skipped without being split. Bytes that do not yet form a
// complete line are buffered across frames; whatever is left when frames ends is
// yielded as a final line without newline.
//
// If frames yields an error, Lines yields that error and stops without flushing the
// buffered bytes. A line that is not valid UTF-8 yields a *LineDecodeError.
func Lines(frames iter.Seq2[Frame, error], stream StreamTag, opts ...Option) iter.Seq2[string, error] {
	cfg := newConfig(opts)
	return func(yield func(string, error) bool) {
		var pending []byte
		lineNo := 0

		emit := func(line []byte) bool {
			lineNo++
			s, err := decodeLine(line, lineNo)
			if err != nil {
				yield("", err)
				return false
			}
			return yield(s, nil)
		}

		for frame, err := range frames {
			if err != nil {
				yield("", err)
				return
			}
			if frame.Stream != stream {
				cfg.logger.Debug("skipping frame", "stream", frame.Stream, "length", len(frame.Payload))
				continue
			}

			data := frame.Payload
			for {
				i := bytes.IndexByte(data, '\n')
				if i < 0 {
					pending = append(pending, data...)
					break
				}

				line := data[:i]
				if len(pending) > 0 {
					pending = append(pending, line...)
					line = pending
				}
				if !emit(line) {
					return
				}
				pending = pending[:0]
				data = data[i+1:]
			}
		}

		if len(pending) > 0 {
			emit(pending)
		}
	}
}

// ReadLines returns the lines of one stream of buf. It is Lines(Frames(buf), stream).
func ReadLines(buf []byte, stream StreamTag, opts ...Option) iter.Seq2[string, error] {
	return Lines(Frames(buf, opts...), stream, opts...)
}

func decodeLine(line []byte, lineNo int) (string, error) {
	if utf8.Valid(line) {
		return string(line), nil
	}
	index := 0
	for index < len(line) {
		r, size := utf8.DecodeRune(line[index:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		index += size
	}
	return "", &LineDecodeError{
		Line:  lineNo,
		Bytes: bytes.Clone(line),
		Index: index,
	}
}
