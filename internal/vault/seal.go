// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"github.com/toeirei/cithare/internal/model"
	"github.com/toeirei/cithare/internal/security"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize   = 32
	nonceSize = 12
	tagSize   = 16
)

// document is the JSON payload inside a sealed blob.
type document struct {
	Passwords []model.Record `json:"passwords"`
}

// deriveKey hashes the master password with SHA-256 and expands the digest
// with HKDF-SHA256 (no salt, no info) into an AES-256 key.
func deriveKey(master security.Secret) ([]byte, error) {
	digest := sha256.Sum256(master)
	defer clear(digest[:])

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, digest[:], nil, nil), key); err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}
	return key, nil
}

func newAEAD(master security.Secret) (cipher.AEAD, error) {
	key, err := deriveKey(master)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts the vault with AES-256-GCM under master. The result is
// nonce || ciphertext || tag.
func Seal(v *Vault, master security.Secret) ([]byte, error) {
	records := v.records
	if records == nil {
		records = []model.Record{}
	}
	plain, err := json.Marshal(document{Passwords: records})
	if err != nil {
		return nil, fmt.Errorf("encode vault: %w", err)
	}
	defer clear(plain)

	aead, err := newAEAD(master)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, nonceSize, nonceSize+len(plain)+tagSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("vault nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plain, nil), nil
}

// Open decrypts a blob produced by Seal.
func Open(blob []byte, master security.Secret) (*Vault, error) {
	if len(blob) < nonceSize+tagSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorrupted, len(blob))
	}
	aead, err := newAEAD(master)
	if err != nil {
		return nil, err
	}
	plain, err := aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return nil, ErrWrongMasterKey
	}
	defer clear(plain)

	var doc document
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return New(doc.Passwords...), nil
}
