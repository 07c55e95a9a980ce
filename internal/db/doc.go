// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists the sealed vault blob. The blob is opaque here: it is
// encrypted before it reaches a Store and decrypted after it leaves one.
//
// Backends
//   - FileStore writes the blob to a single file, atomically.
//   - BunStore keeps it in a `vaults` table through Bun, on SQLite,
//     PostgreSQL or MySQL.
//
// Use Open with the configured database type and DSN. Tests use
// NewStoreFromDSN("sqlite", ":memory:") for real SQL semantics, or swap
// sqlOpenFunc for a go-sqlmock connection to exercise error paths.
package db
