package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeFromInt(t *testing.T) {
	req := require.New(t)

	b, err := encodeFromInt(257, 16)
	req.NoError(err)
	req.Equal("00000001 00000001", b.String())

	b, err = encodeFromInt(-1, 8)
	req.NoError(err)
	req.Equal("11111111", b.String())

	_, err = encodeFromInt(300, 8)
	req.Error(err)
	_, err = encodeFromInt(1, 12)
	req.Error(err)
}

func TestEncodeFromText(t *testing.T) {
	req := require.New(t)

	b, err := encodeFromText("A", "")
	req.NoError(err)
	req.Equal("01000001", b.String())

	b, err = encodeFromText("é", "ISO_8859-1:1987")
	req.NoError(err)
	req.Equal(1, b.ByteSize())

	_, err = encodeFromText("A", "no-such-charset")
	req.Error(err)
}
