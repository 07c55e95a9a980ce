// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
)

// Store holds one sealed vault blob.
type Store interface {
	// Exists reports whether a vault has been saved.
	Exists(ctx context.Context) (bool, error)
	// Load returns the saved blob or ErrNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the saved blob.
	Save(ctx context.Context, blob []byte) error
	Close() error
}

// Open returns the Store for dbType. For "file" the dsn is the vault path.
func Open(dbType, dsn string) (Store, error) {
	switch dbType {
	case "file", "":
		if dsn == "" {
			return nil, fmt.Errorf("file store needs a path")
		}
		fileStore := NewFileStore(dsn)
		dbLogf("db: using vault file %s", fileStore.Path())
		return fileStore, nil
	case "sqlite", "postgres", "mysql":
		s, err := NewStoreFromDSN(dbType, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedType, dbType)
	}
}
