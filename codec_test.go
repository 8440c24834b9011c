package bitarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/spacemeshos/bitarray"
)

func TestNewInt(t *testing.T) {
	req := require.New(t)

	req.Equal("00000001", bitarray.NewInt8(1).String())
	req.Equal("11111111", bitarray.NewInt8(-1).String())
	req.Equal("00000001 00000001", bitarray.NewInt16(257).String())
	req.Equal("00000000 00000000 00000000 00000001", bitarray.NewInt32(1).String())
	req.Equal(
		"00000001 00000000 00000000 00000000 00000000 00000000 00000000 00000001",
		bitarray.NewInt64(72057594037927937).String(),
	)
}

func TestNewIntSizes(t *testing.T) {
	req := require.New(t)

	req.Equal(1, bitarray.NewInt8(0).ByteSize())
	req.Equal(2, bitarray.NewInt16(0).ByteSize())
	req.Equal(4, bitarray.NewInt32(0).ByteSize())
	req.Equal(8, bitarray.NewInt64(0).ByteSize())
	req.Equal(64, bitarray.NewInt64(0).BitSize())
}

func TestNewIntLittleEndian(t *testing.T) {
	req := require.New(t)

	b := bitarray.NewInt32(0x0A0B0C0D)
	v, err := b.NthByte(0)
	req.NoError(err)
	req.Equal(byte(0x0D), v)
	v, err = b.NthByte(3)
	req.NoError(err)
	req.Equal(byte(0x0A), v)
}

func TestParse(t *testing.T) {
	req := require.New(t)

	b, err := bitarray.Parse("111000 10100101")
	req.NoError(err)
	req.Equal(14, b.BitSize())
	req.Equal(2, b.ByteSize())
	req.Equal("00111000 10100101", b.String())

	val, err := b.Get(0)
	req.NoError(err)
	req.True(val)
	val, err = b.Get(1)
	req.NoError(err)
	req.False(val)
}

func TestParseWhitespace(t *testing.T) {
	req := require.New(t)

	b, err := bitarray.Parse(" 1010\t0101\n")
	req.NoError(err)
	req.Equal("10100101", b.String())

	b, err = bitarray.Parse("")
	req.NoError(err)
	req.Equal(0, b.BitSize())
	req.Equal("", b.String())

	b, err = bitarray.Parse(" \t\n")
	req.NoError(err)
	req.Equal(0, b.BitSize())
}

func TestParseInvalidDigit(t *testing.T) {
	req := require.New(t)

	for _, s := range []string{"102", "abc", "1010 2"} {
		_, err := bitarray.Parse(s)
		req.ErrorIs(err, bitarray.ErrInvalidArgument)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	req := require.New(t)

	for _, s := range []string{
		"00000000",
		"10100101",
		"00111000 10100101",
		"11111111 00000000 11110000 00001111",
	} {
		b, err := bitarray.Parse(s)
		req.NoError(err)
		req.Equal(s, b.String())

		reparsed, err := bitarray.Parse(b.String())
		req.NoError(err)
		req.Equal(b.Bytes(), reparsed.Bytes())
	}
}

func TestNewText(t *testing.T) {
	req := require.New(t)

	// Encoded bytes back the container in encoding order: byte 0 is
	// the first encoded byte.
	b, err := bitarray.NewText("AB", nil)
	req.NoError(err)
	req.Equal(16, b.BitSize())

	v, err := b.NthByte(0)
	req.NoError(err)
	req.Equal(byte('A'), v)
	req.Equal("01000010 01000001", b.String())
}

func TestNewTextCharset(t *testing.T) {
	req := require.New(t)

	// ISO 8859-1 encodes é as the single byte 0xE9.
	b, err := bitarray.NewText("é", charmap.ISO8859_1)
	req.NoError(err)
	req.Equal(1, b.ByteSize())
	v, err := b.NthByte(0)
	req.NoError(err)
	req.Equal(byte(0xE9), v)

	// UTF-8 takes two bytes for the same rune.
	b, err = bitarray.NewText("é", unicode.UTF8)
	req.NoError(err)
	req.Equal(2, b.ByteSize())
}
