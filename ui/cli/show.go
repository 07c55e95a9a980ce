// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/cithare/internal/db"
	"github.com/toeirei/cithare/internal/display"
	"github.com/toeirei/cithare/internal/i18n"
	"github.com/toeirei/cithare/internal/logging"
	"github.com/toeirei/cithare/internal/model"
)

type showOptions struct {
	displayTime  uint
	website      string
	regex        bool
	output       string
	showPassword bool
	paste        bool
}

func newShowCmd() *cobra.Command {
	var o showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show passwords",
		Long: `Shows the vault as a bordered grid on the terminal. Passwords are
masked unless --show-password is given or display.show_password is set.
The grid stays up for the display time and then until a key is pressed.

--website narrows the records to one site; with --regex it is a
case-insensitive pattern that must match exactly one website.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if o.paste && o.website == "" {
				return errors.New(i18n.T("show.paste_needs_website"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, o)
		},
	}
	cmd.Flags().UintVarP(&o.displayTime, "display-time", "d", 0, "Display duration in seconds")
	cmd.Flags().StringVarP(&o.website, "website", "w", "", "Specify the site")
	cmd.Flags().BoolVarP(&o.regex, "regex", "r", false, "Find the website by matching its name")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file (zstd compressed when ending in .zst)")
	cmd.Flags().BoolVar(&o.showPassword, "show-password", false, "Display plain password")
	cmd.Flags().BoolVarP(&o.paste, "paste", "p", false, "Write the password into the clipboard")
	return cmd
}

func runShow(cmd *cobra.Command, o showOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	return withStore(func(store db.Store) error {
		v, master, err := unlock(ctx, newPrompter(), store)
		if err != nil {
			return err
		}
		master.Zero()

		if o.website != "" {
			if err := v.Narrow(o.website, o.regex); err != nil {
				return err
			}
		}

		switch {
		case o.paste:
			site := o.website
			if o.regex {
				// Narrow left exactly one record
				site = v.Records()[0].Website
			}
			rec, ok := v.Lookup(site)
			if !ok {
				return errors.New(i18n.T("show.paste_not_found"))
			}
			if err := writeClipboard(rec.Password); err != nil {
				return fmt.Errorf("%s: %w", i18n.T("show.paste_failed"), err)
			}
			if o.regex {
				fmt.Fprintln(out, i18n.T("show.paste_for", rec.Website))
			}
			fmt.Fprintln(out, i18n.T("show.pasted"))
			return nil

		case o.output != "":
			if err := writeExport(o.output, v.Text()); err != nil {
				return fmt.Errorf("%s: %w", i18n.T("show.output_failed"), err)
			}
			fmt.Fprintln(out, i18n.T("show.written", o.output))
			return nil
		}

		records := v.Records()
		if !o.showPassword && !appConfig.Display.ShowPassword {
			for i := range records {
				records[i] = records[i].Masked()
			}
		}
		return displayRecords(records, displayOptions(cmd, o))
	})
}

func displayOptions(cmd *cobra.Command, o showOptions) display.Options {
	opts := display.DefaultOptions()
	opts.Hold = appConfig.Display.Hold()
	opts.WaitForKey = appConfig.Display.WaitForKey
	if cmd.Flags().Changed("display-time") {
		opts.Hold = time.Duration(o.displayTime) * time.Second
	}
	return opts
}

// displayRecords runs one display session over records.
func displayRecords(records []model.Record, opts display.Options) error {
	term, err := newTerminal()
	if err != nil {
		return fmt.Errorf("%w: %v", display.ErrTerminalInit, err)
	}
	logging.Debugf("display: showing %d records, hold %s, wait for key %v", len(records), opts.Hold, opts.WaitForKey)
	return display.NewSession(term, opts).Run(records, display.Measure(records))
}
