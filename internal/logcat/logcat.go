package logcat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"dockerlog/pkg/stdmux"
)

// initialBufferSize is the starting capacity for reading the whole input.
const initialBufferSize = 32 * 1024

// ReadAll reads r to completion.
func ReadAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(initialBufferSize)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return buf.Bytes(), nil
}

// PrintLines decodes the multiplexed stream in r and writes the lines of one stream to
// w, one per output line. On a decode error the lines written so far are flushed and
// the error is returned.
func PrintLines(r io.Reader, w io.Writer, stream stdmux.StreamTag, logger *slog.Logger) error {
	input, err := ReadAll(r)
	if err != nil {
		return err
	}
	logger.Debug("decoding lines", "bytes", len(input), "stream", stream)

	out := bufio.NewWriter(w)
	count := 0
	for line, err := range stdmux.ReadLines(input, stream, stdmux.WithLogger(logger)) {
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				logger.Error("Failed to flush output", "error", flushErr)
			}
			return fmt.Errorf("decoding %s after %d lines: %w", stream, count, err)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
		count++
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Debug("decoded lines", "lines", count, "stream", stream)
	return nil
}

// PrintFrames writes one line per frame of both streams:
//
//	stream length: payload
//
// The payload is quoted with %q so binary data and newlines stay on one line.
func PrintFrames(r io.Reader, w io.Writer, logger *slog.Logger) error {
	input, err := ReadAll(r)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	reader := stdmux.NewReader(input, stdmux.WithLogger(logger))
	for {
		frame, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				logger.Error("Failed to flush output", "error", flushErr)
			}
			return fmt.Errorf("decoding frames: %w", err)
		}
		if _, err := fmt.Fprintf(out, "%s %d: %q\n", frame.Stream, len(frame.Payload), frame.Payload); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Debug("decoded frames", "bytes", reader.Offset())
	return nil
}

// Encode copies r into w as frames of the given stream. Each read from r becomes one
// frame, so the framing depends on how the input arrives.
func Encode(r io.Reader, w io.Writer, stream stdmux.StreamTag) error {
	writer := stdmux.NewWriter(w)
	_, copyErr := io.Copy(writer.StreamWriter(stream), r)
	closeErr := writer.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to read input: %w", copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write frames: %w", closeErr)
	}
	return nil
}
