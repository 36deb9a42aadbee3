package main

import (
	"fmt"
	"os"

	"github.com/danmuck/spellctl/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "spellctl",
		Short: "Register spell checkers with Microsoft Office",
		Long: `spellctl keeps the proofing tools override of every installed Office
in sync with the spellers registered on this machine.

Registrations live under one central key. Every command that changes them
rewrites the Create and Delete records of each Office settings root and
stamps a fresh revision counter so Office reloads them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to spellctl.toml (default $SPELLCTL_CONFIG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		registerCmd(a),
		deregisterCmd(a),
		refreshCmd(a),
		listCmd(a),
		syncCmd(a),
		nukeCmd(a),
		libreOfficeCmd(a),
	)
	return root
}
