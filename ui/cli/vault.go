// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/cithare/internal/config"
	"github.com/toeirei/cithare/internal/db"
	"github.com/toeirei/cithare/internal/display"
	"github.com/toeirei/cithare/internal/i18n"
	"github.com/toeirei/cithare/internal/security"
	"github.com/toeirei/cithare/internal/vault"
	"github.com/toeirei/cithare/ui/prompt"
)

// Prompter is what the commands need from the user.
type Prompter interface {
	Password(msg string) (security.Secret, error)
	ConfirmPassword(first, confirm string) (security.Secret, error)
	Confirm(question string, defaultYes bool) (bool, error)
}

// Swapped by tests.
var (
	newPrompter    = func() Prompter { return prompt.Stdio() }
	newTerminal    = display.NewTerminal
	writeClipboard = clipboard.WriteAll
)

// openStore opens the configured backend. The file backend defaults to
// the XDG data path.
func openStore(cfg config.Config) (db.Store, error) {
	dsn := cfg.Database.Dsn
	if (cfg.Database.Type == "file" || cfg.Database.Type == "") && dsn == "" {
		path, err := config.VaultPath()
		if err != nil {
			return nil, err
		}
		dsn = path
	}
	return db.Open(cfg.Database.Type, dsn)
}

// withStore runs fn against the configured store and closes it afterwards.
func withStore(fn func(db.Store) error) error {
	store, err := openStore(appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}

// requireVault fails with vault.ErrNotInitialized when nothing was saved yet.
func requireVault(ctx context.Context, store db.Store) error {
	ok, err := store.Exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", vault.ErrNotInitialized, i18n.T("error.run_init"))
	}
	return nil
}

func loadVault(ctx context.Context, store db.Store, master security.Secret) (*vault.Vault, error) {
	blob, err := store.Load(ctx)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", vault.ErrNotInitialized, i18n.T("error.run_init"))
	}
	if err != nil {
		return nil, err
	}
	return vault.Open(blob, master)
}

func saveVault(ctx context.Context, store db.Store, v *vault.Vault, master security.Secret) error {
	blob, err := vault.Seal(v, master)
	if err != nil {
		return err
	}
	return store.Save(ctx, blob)
}

// unlock asks for the master password and opens the vault with it. The
// caller zeroes the returned secret.
func unlock(ctx context.Context, p Prompter, store db.Store) (*vault.Vault, security.Secret, error) {
	if err := requireVault(ctx, store); err != nil {
		return nil, nil, err
	}
	master, err := p.Password(i18n.T("prompt.master"))
	if err != nil {
		return nil, nil, err
	}
	v, err := loadVault(ctx, store, master)
	if err != nil {
		master.Zero()
		return nil, nil, err
	}
	return v, master, nil
}

func isZstd(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// readExport reads a text export, decompressing .zst files.
func readExport(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if isZstd(path) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("open zstd stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// writeExport writes the text export with owner-only permissions,
// compressing it when path ends in .zst.
func writeExport(path, text string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var zw *zstd.Encoder
	if isZstd(path) {
		zw, err = zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return fmt.Errorf("open zstd stream: %w", err)
		}
		w = zw
	}
	if _, err := io.WriteString(w, text); err != nil {
		_ = f.Close()
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			_ = f.Close()
			return err
		}
	}
	return f.Close()
}
