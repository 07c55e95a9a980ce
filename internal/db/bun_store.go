// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// DefaultVaultName is the row key used for the single vault of a database.
const DefaultVaultName = "default"

// vaultRow stores the blob base64 encoded so the same TEXT column works on
// every dialect.
type vaultRow struct {
	bun.BaseModel `bun:"table:vaults"`

	Name      string    `bun:"name,pk,type:varchar(64)"`
	Data      string    `bun:"data,type:text,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// BunStore keeps the vault in a SQL table.
type BunStore struct {
	db   *bun.DB
	name string
}

func (s *BunStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.NewCreateTable().Model((*vaultRow)(nil)).IfNotExists().Exec(ctx)
	return err
}

func (s *BunStore) Exists(ctx context.Context) (bool, error) {
	return s.db.NewSelect().Model((*vaultRow)(nil)).Where("name = ?", s.name).Exists(ctx)
}

func (s *BunStore) Load(ctx context.Context) ([]byte, error) {
	var row vaultRow
	err := s.db.NewSelect().Model(&row).Where("name = ?", s.name).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load vault %q: %w", s.name, err)
	}
	blob, err := base64.StdEncoding.DecodeString(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode vault %q: %w", s.name, err)
	}
	return blob, nil
}

// Save updates the vault row, inserting it on first save.
func (s *BunStore) Save(ctx context.Context, blob []byte) error {
	row := &vaultRow{
		Name:      s.name,
		Data:      base64.StdEncoding.EncodeToString(blob),
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*vaultRow)(nil)).Where("name = ?", s.name).Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			_, err = tx.NewUpdate().Model(row).Column("data", "updated_at").WherePK().Exec(ctx)
			return err
		}
		_, err = tx.NewInsert().Model(row).Exec(ctx)
		return MapDBError(err)
	})
	if err != nil {
		return fmt.Errorf("save vault %q: %w", s.name, err)
	}
	dbLogf("db: saved vault %q (%d bytes)", s.name, len(blob))
	return nil
}

func (s *BunStore) Close() error { return s.db.Close() }
