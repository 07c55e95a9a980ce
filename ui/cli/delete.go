// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/cithare/internal/db"
	"github.com/toeirei/cithare/internal/i18n"
	"github.com/toeirei/cithare/internal/vault"
)

func newDeleteCmd() *cobra.Command {
	var all bool
	var website string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete passwords from the password manager",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !all && website == "" {
				return errors.New(i18n.T("delete.need_target"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p := newPrompter()
			return withStore(func(store db.Store) error {
				v, master, err := unlock(ctx, p, store)
				if err != nil {
					return err
				}
				defer master.Zero()

				var removed int
				if all {
					ok, err := p.Confirm(i18n.T("delete.confirm_all"), false)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(out, i18n.T("delete.cancelled"))
						return nil
					}
					removed = v.RemoveAll()
				} else {
					removed = v.Remove(website)
					if removed == 0 {
						return fmt.Errorf("%w: %s", vault.ErrNoMatch, website)
					}
				}

				if err := saveVault(ctx, store, v, master); err != nil {
					return err
				}
				fmt.Fprintln(out, i18n.T("delete.deleted", removed))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Delete all passwords")
	cmd.Flags().StringVarP(&website, "website", "w", "", "Website whose passwords are deleted")
	return cmd
}
