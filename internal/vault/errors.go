// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import "errors"

var (
	// ErrWrongMasterKey is returned when a sealed vault fails authentication.
	ErrWrongMasterKey = errors.New("wrong master password")
	// ErrCorrupted is returned when a blob is too short or decrypts to
	// something that is not a vault document.
	ErrCorrupted = errors.New("vault data is corrupted")
	// ErrNotInitialized is returned when no sealed vault exists yet.
	ErrNotInitialized = errors.New("vault is not initialized")
	// ErrAlreadyInitialized is returned by init when a vault already exists.
	ErrAlreadyInitialized = errors.New("vault is already initialized")
	ErrNoMatch            = errors.New("no website matched")
	ErrAmbiguousMatch     = errors.New("more than one website matched")
)
