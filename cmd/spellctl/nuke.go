package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func nukeCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "nuke",
		Short: "Deregister every speller",
		Long: `Nuke deregisters every speller, leaving only tombstones in the Office
settings roots. When the LibreOffice integration is enabled the extension is
removed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Deregister all spellers?") {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			n, report, err := svc.Nuke()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deregistered %d keys\n", n)
			printReport(cmd.OutOrStdout(), report)

			if a.cfg.LibreOffice.Enabled {
				m, err := a.libreOffice()
				if err != nil {
					return err
				}
				if err := m.Remove(); err != nil {
					log.Error().Err(err).Msg("spellctl: unable to remove LibreOffice extension")
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
