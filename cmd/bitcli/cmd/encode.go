package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/spacemeshos/bitarray"
)

var (
	encodeInt     int64
	encodeWidth   int
	encodeText    string
	encodeCharset string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [--int N --width 8|16|32|64] [--text S [--charset NAME]]",
	Short: "Build a bit array from an integer or a text string and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case cmd.Flags().Changed("text"):
			b, err := encodeFromText(encodeText, encodeCharset)
			if err != nil {
				return err
			}
			fmt.Println(b)
			return nil
		case cmd.Flags().Changed("int"):
			b, err := encodeFromInt(encodeInt, encodeWidth)
			if err != nil {
				return err
			}
			fmt.Println(b)
			return nil
		default:
			return fmt.Errorf("either --int or --text is required")
		}
	},
}

func encodeFromInt(v int64, width int) (*bitarray.BitArray, error) {
	switch width {
	case 8:
		if v < math.MinInt8 || v > math.MaxInt8 {
			return nil, fmt.Errorf("invalid `int`; expected: within int8 range, given: %d", v)
		}
		return bitarray.NewInt8(int8(v)), nil
	case 16:
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, fmt.Errorf("invalid `int`; expected: within int16 range, given: %d", v)
		}
		return bitarray.NewInt16(int16(v)), nil
	case 32:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("invalid `int`; expected: within int32 range, given: %d", v)
		}
		return bitarray.NewInt32(int32(v)), nil
	case 64:
		return bitarray.NewInt64(v), nil
	default:
		return nil, fmt.Errorf("invalid `width`; expected: 8, 16, 32 or 64, given: %d", width)
	}
}

func encodeFromText(s, charset string) (*bitarray.BitArray, error) {
	var enc encoding.Encoding
	if charset != "" {
		var err error
		enc, err = ianaindex.IANA.Encoding(charset)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("invalid `charset`; expected: an IANA charset name, given: %s", charset)
		}
	}
	return bitarray.NewText(s, enc)
}

func init() {
	encodeCmd.Flags().Int64Var(&encodeInt, "int", 0, "Integer value to encode")
	encodeCmd.Flags().IntVar(&encodeWidth, "width", 64, "Integer width in bits")
	encodeCmd.Flags().StringVar(&encodeText, "text", "", "Text to encode")
	encodeCmd.Flags().StringVar(&encodeCharset, "charset", "", "IANA charset name (default UTF-8)")
	rootCmd.AddCommand(encodeCmd)
}
