package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitarray"
)

var parseCmd = &cobra.Command{
	Use:   "parse <bits>",
	Short: "Parse a binary-digit string and print its canonical rendering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bitarray.Parse(args[0])
		if err != nil {
			return err
		}

		logger.Debug("parsed bit array",
			zap.Int("bits", b.BitSize()),
			zap.Int("bytes", b.ByteSize()),
		)
		fmt.Println(b)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
