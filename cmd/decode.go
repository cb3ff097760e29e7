package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/lbryio/base58.go/address"
	"github.com/lbryio/base58.go/address/base58"
)

var (
	decodeCheck         bool
	decodeVersionLength int
	decodeDump          bool
)

func init() {
	decodeCmd := &cobra.Command{
		Use:   "decode <text>",
		Args:  cobra.ExactArgs(1),
		Short: "Decode a base58 string to hex",
		RunE:  decode,
	}
	decodeCmd.Flags().BoolVar(&decodeCheck, "check", false, "verify and strip a checksum (Base58Check)")
	decodeCmd.Flags().IntVar(&decodeVersionLength, "version-length", 0, "number of version prefix bytes to split off (with --check)")
	decodeCmd.Flags().BoolVar(&decodeDump, "dump", false, "dump the decoded bytes")
	RootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !decodeCheck {
		decoded, err := base58.Decode(args[0])
		if err != nil {
			return err
		}
		if decodeDump {
			spew.Fdump(out, decoded)
			return nil
		}
		fmt.Fprintf(out, "%x\n", decoded)
		return nil
	}

	var d address.Data
	defer d.Wipe()
	if err := d.SetString(args[0], decodeVersionLength); err != nil {
		return err
	}
	if decodeDump {
		spew.Fdump(out, d.Version(), d.Payload())
		return nil
	}
	fmt.Fprintf(out, "version: %x\npayload: %x\n", d.Version(), d.Payload())
	return nil
}
