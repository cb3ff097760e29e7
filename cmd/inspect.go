package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lbryio/base58.go/address"
	"github.com/lbryio/base58.go/chainparams"
)

func init() {
	inspectCmd := &cobra.Command{
		Use:   "inspect <address|secret>",
		Args:  cobra.ExactArgs(1),
		Short: "Identify an address or secret key on the selected network",
		RunE:  inspect,
	}
	RootCmd.AddCommand(inspectCmd)
}

func inspect(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}
	log.Debugf("inspecting on %s", params.Name)

	info, err := address.Inspect(args[0], params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "network: %s\ntype: %s\nversion: %x\n", params.Name, info.Type, info.Version)
	if info.Type == chainparams.SecretKey {
		fmt.Fprintf(out, "compressed: %t\n", info.Compressed)
		return nil
	}
	fmt.Fprintf(out, "payload: %x\n", info.Payload)
	return nil
}
