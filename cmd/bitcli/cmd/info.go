package cmd

import (
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitarray"
)

var infoCmd = &cobra.Command{
	Use:   "info <bits>",
	Short: "Print size and capacity details of a bit array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bitarray.Parse(args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Property", "Value"})
		table.Append([]string{"Bit size", strconv.Itoa(b.BitSize())})
		table.Append([]string{"Byte size", strconv.Itoa(b.ByteSize())})
		table.Append([]string{"Capacity (bits)", strconv.Itoa(b.ByteSize() * 8)})
		table.Append([]string{"Backing buffer", bytefmt.ByteSize(uint64(b.ByteSize()))})
		table.Append([]string{"Rendering", b.String()})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
