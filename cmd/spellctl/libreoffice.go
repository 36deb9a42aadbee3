package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var errNoOxt = errors.New("spellctl: no extension package, set libreoffice.oxt_path or pass --oxt")

func libreOfficeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libreoffice",
		Short: "Manage the LibreOffice speller extension",
	}
	cmd.AddCommand(libreOfficeInstallCmd(a), libreOfficeRemoveCmd(a))
	return cmd
}

func libreOfficeInstallCmd(a *app) *cobra.Command {
	var oxt string
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the extension for all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(oxt) == "" {
				oxt = a.cfg.LibreOffice.OxtPath
			}
			if strings.TrimSpace(oxt) == "" {
				return errNoOxt
			}
			m, err := a.libreOffice()
			if err != nil {
				return err
			}
			return m.Install(oxt)
		},
	}
	cmd.Flags().StringVar(&oxt, "oxt", "", "Extension package (default libreoffice.oxt_path)")
	return cmd
}

func libreOfficeRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.libreOffice()
			if err != nil {
				return err
			}
			return m.Remove()
		},
	}
}
