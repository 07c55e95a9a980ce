// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cithare", ".citharecf")
	s := NewFileStore(path)

	if ok, err := s.Exists(ctx); err != nil || ok {
		t.Fatalf("Exists before save = %v, %v", ok, err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, []byte("second")) {
		t.Fatalf("Load = %q", got)
	}
	if ok, _ := s.Exists(ctx); !ok {
		t.Fatalf("Exists after save = false")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("vault mode = %v", info.Mode().Perm())
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(entries))
	}
}

func TestFileStore_SaveHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewFileStore(filepath.Join(t.TempDir(), "v"))
	if err := s.Save(ctx, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ok, _ := s.Exists(context.Background()); ok {
		t.Fatalf("cancelled save wrote the vault")
	}
}

func TestOpen_PicksBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v")
	s, err := Open("file", path)
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	fileStore, ok := s.(*FileStore)
	if !ok {
		t.Fatalf("Open(file) returned %T", s)
	}
	if fileStore.Path() != path {
		t.Fatalf("Path() = %q, want %q", fileStore.Path(), path)
	}

	if _, err := Open("file", ""); err == nil {
		t.Fatalf("expected an error for a file store without path")
	}
	if _, err := Open("mongodb", "x"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	s, err = Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	defer func() { _ = s.Close() }()
	if _, ok := s.(*BunStore); !ok {
		t.Fatalf("Open(sqlite) returned %T", s)
	}
}
