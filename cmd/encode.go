package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbryio/base58.go/address"
	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/extras/errors"
)

var (
	encodeCheck   bool
	encodeVersion string
)

func init() {
	encodeCmd := &cobra.Command{
		Use:   "encode <hex>",
		Args:  cobra.ExactArgs(1),
		Short: "Encode hex bytes as base58",
		RunE:  encode,
	}
	encodeCmd.Flags().BoolVar(&encodeCheck, "check", false, "append a checksum (Base58Check)")
	encodeCmd.Flags().StringVar(&encodeVersion, "version", "", "hex version prefix to prepend")
	RootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	payload, err := hex.DecodeString(args[0])
	if err != nil {
		return errors.Prefix("payload", err)
	}
	version, err := hex.DecodeString(encodeVersion)
	if err != nil {
		return errors.Prefix("version", err)
	}

	if encodeCheck {
		var d address.Data
		d.SetData(version, payload)
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), base58.Encode(append(version, payload...)))
	return nil
}
