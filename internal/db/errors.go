// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by Load when no vault has been saved yet.
	ErrNotFound = errors.New("vault not found")
	// ErrUnsupportedType is returned by Open for an unknown database type.
	ErrUnsupportedType = errors.New("unsupported database type")
	// ErrDuplicate is returned when an insert hits an existing vault row.
	ErrDuplicate = errors.New("duplicate record")
)

// MapDBError maps driver-specific constraint violations onto ErrDuplicate.
// The mapping is string based so no driver package has to be imported here.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
