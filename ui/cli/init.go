// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/cithare/internal/db"
	"github.com/toeirei/cithare/internal/i18n"
	"github.com/toeirei/cithare/internal/vault"
)

func newInitCmd() *cobra.Command {
	var force bool
	var importPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the password manager",
		Long: `Creates an empty vault sealed with a new master password.
With --import the vault starts with the records of a plain table
previously written by 'show --output' (zstd compressed when the file
name ends in .zst).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withStore(func(store db.Store) error {
				exists, err := store.Exists(ctx)
				if err != nil {
					return err
				}
				if exists && !force {
					if importPath == "" {
						fmt.Fprintln(cmd.OutOrStdout(), i18n.T("init.already"))
					}
					return vault.ErrAlreadyInitialized
				}

				v := vault.New()
				if importPath != "" {
					text, err := readExport(importPath)
					if err != nil {
						return fmt.Errorf("%s: %w", i18n.T("init.import_failed"), err)
					}
					v = vault.ParseText(text)
				}

				master, err := newPrompter().ConfirmPassword(i18n.T("prompt.choose_master"), i18n.T("prompt.confirm_master"))
				if err != nil {
					return err
				}
				defer master.Zero()

				if err := saveVault(ctx, store, v, master); err != nil {
					return err
				}
				if importPath != "" {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("init.done_import", v.Len()))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("init.done"))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force the initialization")
	cmd.Flags().StringVarP(&importPath, "import", "i", "", "Initialize with a formatted password file")
	return cmd
}
