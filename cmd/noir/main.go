package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	datadir       = btcutil.AppDataDir("noir-cli", false)
	statePath     = filepath.Join(datadir, "state.json")
	daemonDatadir = btcutil.AppDataDir("noird", false)

	rootCmd = &cobra.Command{
		Use:   "noir",
		Short: "CLI for noir keygen daemon",
		Long: "This CLI lets you generate mnemonics and derive keys and addresses " +
			"either through a running noir daemon or offline",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if _, err := os.Stat(datadir); os.IsNotExist(err) {
				os.MkdirAll(datadir, os.ModeDir|0755)
			}
		},
		Version:       formatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func initialState() map[string]string {
	return map[string]string{
		"rpcserver":     "localhost:18100",
		"no_tls":        strconv.FormatBool(false),
		"tls_cert_path": filepath.Join(daemonDatadir, "tls", "cert.pem"),
	}
}

func init() {
	rootCmd.AddCommand(
		configCmd, genSeedCmd, deriveCmd, deriveXKeyCmd, infoCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printErr(err)
		os.Exit(1)
	}
}
