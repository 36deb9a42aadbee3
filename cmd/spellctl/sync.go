package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/spellctl/internal/manifest"
	"github.com/spf13/cobra"
)

var errNoSpellersDir = errors.New("spellctl: no spellers directory, set spellers_dir or pass --dir")

func syncCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Replace registrations with the installed speller manifests",
		Long: `Sync reads every <dir>/*/spellers.toml, clears the existing registrations
and registers exactly the tags the manifests declare. Tags missing from the
manifests, or whose entries are invalid, end up deregistered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(dir) == "" {
				dir = a.cfg.SpellersDir
			}
			if strings.TrimSpace(dir) == "" {
				return errNoSpellersDir
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			sources, err := manifest.LoadAll(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sources) == 0 {
				fmt.Fprintf(out, "no speller manifests under %s, registrations left unchanged\n", dir)
				return nil
			}
			summary, err := svc.Sync(sources)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "registered %d keys from %d manifests\n", len(summary.Registered), len(sources))
			for _, skipped := range summary.Skipped {
				fmt.Fprintf(out, "skipped %s (%s): %v\n", skipped.Tag, skipped.Source, skipped.Err)
			}
			printReport(out, summary.Report)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Spellers directory (default spellers_dir)")
	return cmd
}
