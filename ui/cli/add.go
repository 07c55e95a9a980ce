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
	"github.com/toeirei/cithare/internal/model"
	"github.com/toeirei/cithare/internal/passgen"
	"github.com/toeirei/cithare/internal/vault"
)

// errPasswordNotSatisfying is returned when the user gives up on generated
// passwords.
var errPasswordNotSatisfying = errors.New("password generation failed")

func newAddCmd() *cobra.Command {
	var (
		website  string
		username string
		mail     string
		replace  bool
		autoGen  uint8
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a password to the password manager",
		Long: `Adds a record for --website. At least --username or --mail is
required unless --replace is given, in which case an existing record for
the website gets the new password and keeps the fields not provided.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if username == "" && mail == "" && !replace {
				return errors.New(i18n.T("add.need_identity"))
			}
			if cmd.Flags().Changed("auto-gen") && int(autoGen) < passgen.MinAutoLength {
				return errors.New(i18n.T("add.too_short", passgen.MinAutoLength))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p := newPrompter()
			return withStore(func(store db.Store) error {
				if err := requireVault(ctx, store); err != nil {
					return err
				}

				var secret string
				if cmd.Flags().Changed("auto-gen") {
					pw, err := pickGeneratedPassword(cmd, p, int(autoGen))
					if err != nil {
						return err
					}
					secret = pw
				} else {
					pw, err := p.ConfirmPassword(i18n.T("prompt.password"), i18n.T("prompt.confirm_password"))
					if err != nil {
						return err
					}
					secret = string(pw.Bytes())
					pw.Zero()
				}

				v, master, err := unlock(ctx, p, store)
				if err != nil {
					return err
				}
				defer master.Zero()

				user := flagValue(cmd, "username", username)
				addr := flagValue(cmd, "mail", mail)
				if replace {
					switch v.ReplaceOrAdd(website, secret, model.FromPtr(user), model.FromPtr(addr)) {
					case vault.Replaced:
						fmt.Fprintln(out, i18n.T("add.replaced"))
					case vault.Added:
						fmt.Fprintln(out, i18n.T("add.added"))
					}
				} else {
					v.Add(model.NewRecord(website, user, addr, secret))
				}

				if err := saveVault(ctx, store, v, master); err != nil {
					return err
				}
				fmt.Fprintln(out, i18n.T("add.saved"))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&website, "website", "w", "", "Website the password belongs to")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&mail, "mail", "m", "", "Account e-mail")
	cmd.Flags().BoolVarP(&replace, "replace", "r", false, "Use in order to replace a password")
	cmd.Flags().Uint8Var(&autoGen, "auto-gen", 0, "Generate an automatic password with a given length")
	_ = cmd.MarkFlagRequired("website")
	return cmd
}

// flagValue is nil unless the flag was given on the command line.
func flagValue(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// pickGeneratedPassword proposes generated passwords until one is accepted
// or the user stops trying.
func pickGeneratedPassword(cmd *cobra.Command, p Prompter, length int) (string, error) {
	for {
		pw, err := passgen.Generate(length, passgen.Options{Numbers: true, Special: true})
		if err != nil {
			return "", err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.generated", pw))

		ok, err := p.Confirm(i18n.T("add.satisfying"), false)
		if err != nil {
			return "", err
		}
		if ok {
			return pw, nil
		}
		again, err := p.Confirm(i18n.T("add.try_again"), false)
		if err != nil {
			return "", err
		}
		if !again {
			return "", errPasswordNotSatisfying
		}
	}
}
