// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMemoryStore(t *testing.T) *BunStore {
	t.Helper()
	s, err := NewStoreFromDSN("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("NewStoreFromDSN: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBunStore_SaveLoadSqlite(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	if ok, err := s.Exists(ctx); err != nil || ok {
		t.Fatalf("Exists on empty db = %v, %v", ok, err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	blob := []byte{0x00, 0xff, 0x10, 'v', 'a', 'u', 'l', 't'}
	if err := s.Save(ctx, blob); err != nil {
		t.Fatalf("Save insert: %v", err)
	}
	if err := s.Save(ctx, append(blob, '!')); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, append(blob, '!')) {
		t.Fatalf("Load = %x", got)
	}

	n, err := s.db.NewSelect().Model((*vaultRow)(nil)).Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("rows = %d, %v", n, err)
	}
}

func TestBunStore_SchemaIsIdempotent(t *testing.T) {
	s := newMemoryStore(t)
	if err := s.ensureSchema(context.Background()); err != nil {
		t.Fatalf("second ensureSchema: %v", err)
	}
}

func TestNewStoreFromDSN_SchemaFailure(t *testing.T) {
	dbMock, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	orig := sqlOpenFunc
	sqlOpenFunc = func(driverName, dsn string) (*sql.DB, error) { return dbMock, nil }
	defer func() { sqlOpenFunc = orig }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnError(errors.New("read-only database"))
	mock.ExpectClose()

	if _, err := NewStoreFromDSN("sqlite", "whatever"); err == nil {
		t.Fatalf("expected an error when the table cannot be created")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBunStore_LoadQueryFailure(t *testing.T) {
	dbMock, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = dbMock.Close() }()

	orig := sqlOpenFunc
	sqlOpenFunc = func(driverName, dsn string) (*sql.DB, error) { return dbMock, nil }
	defer func() { sqlOpenFunc = orig }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	s, err := NewStoreFromDSN("sqlite", "whatever")
	if err != nil {
		t.Fatalf("NewStoreFromDSN: %v", err)
	}
	_, err = s.Load(context.Background())
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a query error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNewStoreFromDSN_UnsupportedType(t *testing.T) {
	if _, err := NewStoreFromDSN("oracle", "x"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestMapDBError(t *testing.T) {
	if MapDBError(nil) != nil {
		t.Fatalf("nil error mapped to non-nil")
	}
	for _, msg := range []string{
		"UNIQUE constraint failed: vaults.name",
		"Error 1062: Duplicate entry 'default'",
		"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)",
	} {
		if !errors.Is(MapDBError(errors.New(msg)), ErrDuplicate) {
			t.Fatalf("%q not mapped to ErrDuplicate", msg)
		}
	}
	other := errors.New("disk full")
	if MapDBError(other) != other {
		t.Fatalf("unrelated error was rewritten")
	}
}
