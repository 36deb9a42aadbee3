package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func registerCmd(a *app) *cobra.Command {
	var tag, path string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a speller for a language tag",
		Long: `Register points every key derived from the language tag at the
dictionary file and refreshes all Office settings roots.

Examples:
  spellctl register --tag se --path "C:\Program Files\WinDivvun\spellers\se\se.bhfst"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			keys, err := svc.Register(tag, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", strings.Join(keys, ", "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "BCP 47 language tag")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Dictionary file")
	_ = cmd.MarkFlagRequired("tag")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func deregisterCmd(a *app) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "deregister",
		Short: "Deregister the speller for a language tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			keys, err := svc.Deregister(tag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deregistered %s\n", strings.Join(keys, ", "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "BCP 47 language tag")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}
