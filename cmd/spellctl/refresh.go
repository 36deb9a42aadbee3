package main

import (
	"fmt"
	"io"

	"github.com/danmuck/spellctl/internal/reconcile"
	"github.com/spf13/cobra"
)

func refreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rewrite Office settings from the registered spellers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			report, err := svc.Refresh()
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered spellers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			entries, err := svc.List()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
			}
			return nil
		},
	}
}

func printReport(w io.Writer, report reconcile.Report) {
	if len(report.Results) == 0 {
		fmt.Fprintln(w, "no Office settings roots found")
		return
	}
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", res.Root.Path, res.Err)
			continue
		}
		fmt.Fprintf(w, "ok   %s created=%d deleted=%d count=%d\n",
			res.Root.Path, res.Stats.Created, res.Stats.Deleted, res.Stats.Count)
	}
}
