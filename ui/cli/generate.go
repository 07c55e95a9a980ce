// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/cithare/internal/i18n"
	"github.com/toeirei/cithare/internal/passgen"
)

func newGeneratePasswordCmd() *cobra.Command {
	var length uint
	var opts passgen.Options

	cmd := &cobra.Command{
		Use:   "generate-password",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passgen.Generate(int(length), opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.T("generate.generating"))
			fmt.Fprintln(out, pw)
			return nil
		},
	}
	cmd.Flags().UintVarP(&length, "length", "l", passgen.DefaultLength, "Password length")
	cmd.Flags().BoolVarP(&opts.Numbers, "use-number", "n", false, "Use numbers in password creation")
	cmd.Flags().BoolVar(&opts.Special, "use-special-char", false, "Use special ascii character in password creation")
	cmd.Flags().BoolVar(&opts.Special, "sp", false, "Shorthand for --use-special-char")
	return cmd
}
