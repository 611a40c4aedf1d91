package stdmux

import "encoding/binary"

// Header is the decoded form of the 8 byte frame header.
type Header struct {
	Stream StreamTag
	Length uint32
}

// DecodeHeader decodes the header at the start of b. It returns the header and the
// number of bytes consumed, which is always HeaderLen on success. The three padding
// bytes are not inspected.
func DecodeHeader(b []byte) (Header, int, error) {
	return decodeHeader(b, 0)
}

func decodeHeader(b []byte, offset int) (Header, int, error) {
	if len(b) < HeaderLen {
		return Header{}, 0, &TruncatedHeaderError{Offset: offset, Remaining: len(b)}
	}
	stream := StreamTag(b[0])
	if !stream.Valid() {
		return Header{}, 0, &UnrecognizedStreamError{Offset: offset, Stream: b[0]}
	}
	return Header{
		Stream: stream,
		Length: binary.BigEndian.Uint32(b[4:HeaderLen]),
	}, HeaderLen, nil
}

// Append appends the encoded header to dst. Padding is written as zeros.
func (h Header) Append(dst []byte) []byte {
	dst = append(dst, byte(h.Stream), 0, 0, 0)
	return binary.BigEndian.AppendUint32(dst, h.Length)
}
