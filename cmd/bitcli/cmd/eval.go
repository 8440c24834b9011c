package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitarray"
)

var evalOp string

var binaryOps = map[string]func(b, other *bitarray.BitArray){
	"and":  (*bitarray.BitArray).And,
	"or":   (*bitarray.BitArray).Or,
	"xor":  (*bitarray.BitArray).Xor,
	"nor":  (*bitarray.BitArray).Nor,
	"xnor": (*bitarray.BitArray).Xnor,
	"nand": (*bitarray.BitArray).Nand,
}

var evalCmd = &cobra.Command{
	Use:   "eval --op <and|or|xor|nor|xnor|nand|not> <bits> [<bits>]",
	Short: "Apply a bitwise logic operation and print the result",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bitarray.Parse(args[0])
		if err != nil {
			return err
		}

		if evalOp == "not" {
			if len(args) != 1 {
				return fmt.Errorf("op `not` takes exactly one operand, given: %d", len(args))
			}
			b.Not()
			fmt.Println(b)
			return nil
		}

		apply, ok := binaryOps[evalOp]
		if !ok {
			return fmt.Errorf("invalid `op`; expected: and, or, xor, nor, xnor, nand or not, given: %s", evalOp)
		}
		if len(args) != 2 {
			return fmt.Errorf("op `%s` takes exactly two operands, given: %d", evalOp, len(args))
		}

		other, err := bitarray.Parse(args[1])
		if err != nil {
			return err
		}

		logger.Debug("evaluating",
			zap.String("op", evalOp),
			zap.Int("bits", b.BitSize()),
			zap.Int("operandBits", other.BitSize()),
		)
		apply(b, other)
		fmt.Println(b)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalOp, "op", "", "Logic operation to apply (required)")
	if err := evalCmd.MarkFlagRequired("op"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(evalCmd)
}
