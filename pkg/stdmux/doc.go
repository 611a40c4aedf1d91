// Package stdmux decodes the multiplexed log stream a container runtime produces when
// stdout and stderr of a container share one connection.
//
// # Stream Format
//
// # Overview
//
// Goals:
//
//  1. Carry stdout and stderr over one byte stream
//  2. Preserve the exact output including binary data
//  3. Detect truncated or corrupt input instead of guessing
//
// # Format Specification
//
// The stream is a sequence of frames without any trailer or checksum. Each frame is an
// 8 byte header followed by the payload:
//
//	offset  length  meaning
//	0       1       stream id: 1 = stdout, 2 = stderr
//	1       3       padding, not validated
//	4       4       payload length, unsigned, big-endian
//	8       length  payload
//
// The end of the input must fall on a frame boundary. A dangling header or a payload
// shorter than announced is an error, not a clean end of stream.
//
// # Examples
//
// Example 1: "hello" on stdout, followed by a newline in a second frame
//
//	01 00 00 00 00 00 00 05 68 65 6c 6c 6f
//	01 00 00 00 00 00 00 01 0a
//
//	- Frames: (stdout, "hello"), (stdout, "\n")
//	- Lines for stdout: "hello"
//
// Example 2: one frame holding several lines
//
//	01 00 00 00 00 00 00 05 61 0a 62 0a 63
//
//	- Lines for stdout: "a", "b", "c" (the last line is flushed at end of input)
//
// # Decoding
//
// [Frames] and [Reader] split a resident buffer into frames. [Lines] reassembles
// newline terminated text from the frames of one stream: frame boundaries are unrelated
// to line boundaries, so a line may span several frames and a frame may hold many lines.
// [ReadLines] combines both.
//
// All sequences are lazy and single-pass. Stopping the iteration early is fine. Every
// error is fatal: the sequence yields it once and ends. There is no resynchronisation on
// a later header.
//
// # Encoding
//
// [AppendFrame] and [Writer] produce the same format, which is mostly useful for tests
// and fixtures.
package stdmux
