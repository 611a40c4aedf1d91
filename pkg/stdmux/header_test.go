package stdmux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHeader_Stdout(t *testing.T) {
	header, n, err := DecodeHeader([]byte{0x01, 0, 0, 0, 0x00, 0x00, 0x00, 0x05})

	require.NoError(t, err)
	require.Equal(t, HeaderLen, n)
	require.Equal(t, Stdout, header.Stream)
	require.Equal(t, uint32(5), header.Length)
}

func TestDecodeHeader_StderrBigEndianLength(t *testing.T) {
	header, n, err := DecodeHeader([]byte{0x02, 0, 0, 0, 0x01, 0x02, 0x03, 0x04})

	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, Stderr, header.Stream)
	require.Equal(t, uint32(0x01020304), header.Length)
}

func TestDecodeHeader_PaddingIgnored(t *testing.T) {
	header, _, err := DecodeHeader([]byte{0x01, 0xFF, 0xAB, 0x7F, 0, 0, 0, 0})

	require.NoError(t, err)
	require.Equal(t, Stdout, header.Stream)
	require.Equal(t, uint32(0), header.Length)
}

func TestDecodeHeader_OnlyFirstEightBytesConsumed(t *testing.T) {
	input := []byte{0x01, 0, 0, 0, 0, 0, 0, 0x02, 'h', 'i', 0x09}

	header, n, err := DecodeHeader(input)

	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, uint32(2), header.Length)
}

func TestDecodeHeader_Truncated(t *testing.T) {
	for size := 0; size < HeaderLen; size++ {
		_, n, err := DecodeHeader(make([]byte, size))

		var truncated *TruncatedHeaderError
		require.ErrorAs(t, err, &truncated, "size %d", size)
		require.Equal(t, size, truncated.Remaining)
		require.Equal(t, 0, n)
		require.ErrorIs(t, err, ErrMalformed)
	}
}

func TestDecodeHeader_UnrecognizedStream(t *testing.T) {
	tests := []struct {
		name   string
		stream byte
	}{
		{name: "stdin", stream: 0x00},
		{name: "three", stream: 0x03},
		{name: "newline", stream: '\n'},
		{name: "high", stream: 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeHeader([]byte{tt.stream, 0, 0, 0, 0, 0, 0, 1})

			var unrecognized *UnrecognizedStreamError
			require.ErrorAs(t, err, &unrecognized)
			require.Equal(t, tt.stream, unrecognized.Stream)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestHeader_Append(t *testing.T) {
	encoded := Header{Stream: Stderr, Length: 0xA0B0C0D0}.Append([]byte("x"))

	require.Equal(t, []byte{'x', 0x02, 0, 0, 0, 0xA0, 0xB0, 0xC0, 0xD0}, encoded)

	header, _, err := DecodeHeader(encoded[1:])
	require.NoError(t, err)
	require.Equal(t, Header{Stream: Stderr, Length: 0xA0B0C0D0}, header)
}

func TestParseStreamTag(t *testing.T) {
	tests := []struct {
		input    string
		expected StreamTag
		wantErr  bool
	}{
		{input: "stdout", expected: Stdout},
		{input: "STDERR", expected: Stderr},
		{input: " 1 ", expected: Stdout},
		{input: "2", expected: Stderr},
		{input: "stdin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := ParseStreamTag(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, tag)
		})
	}
}

func TestStreamTag_String(t *testing.T) {
	require.Equal(t, "stdout", Stdout.String())
	require.Equal(t, "stderr", Stderr.String())
	require.Equal(t, "stream(3)", StreamTag(3).String())
	require.False(t, StreamTag(0).Valid())
}
