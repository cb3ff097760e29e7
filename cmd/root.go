package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lbryio/base58.go/chainparams"
)

var (
	network    string
	paramsFile string
	verbose    bool
)

// RootCmd is the base command; subcommands register themselves in init.
var RootCmd = &cobra.Command{
	Use:           "base58",
	Short:         "Encode, decode and inspect Base58 and Base58Check strings",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&network, "network", "lbrycrd_main", "built-in network whose version prefixes to use")
	RootCmd.PersistentFlags().StringVar(&paramsFile, "params-file", "", "ini file defining a custom network (overrides --network)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}

func loadParams() (*chainparams.Params, error) {
	if paramsFile != "" {
		return chainparams.Load(paramsFile)
	}
	return chainparams.ByName(network)
}
