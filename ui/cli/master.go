// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/cithare/internal/db"
	"github.com/toeirei/cithare/internal/i18n"
	"github.com/toeirei/cithare/internal/logging"
)

// runChangeMasterPassword re-seals the vault under a new master password.
func runChangeMasterPassword(cmd *cobra.Command) error {
	ctx := cmd.Context()
	p := newPrompter()
	return withStore(func(store db.Store) error {
		v, master, err := unlock(ctx, p, store)
		if err != nil {
			return err
		}
		defer master.Zero()

		newMaster, err := p.ConfirmPassword(i18n.T("prompt.new_master"), i18n.T("prompt.confirm_new_master"))
		if err != nil {
			return err
		}
		defer newMaster.Zero()

		if err := saveVault(ctx, store, v, newMaster); err != nil {
			return err
		}
		logging.Debugf("master password changed for %d records", v.Len())
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("master.changed"))
		return nil
	})
}
