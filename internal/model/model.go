// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures shared by the vault,
// the storage layer and the terminal display.
package model // import "github.com/toeirei/cithare/internal/model"

import "fmt"

// MaskedPassword replaces a password when plain display is not requested.
const MaskedPassword = "********"

// Record is one secret entry. Website and Password are required, Username
// and Mail are optional.
type Record struct {
	Website  string       `json:"website"`
	Username OptionalText `json:"username,omitzero"`
	Mail     OptionalText `json:"mail,omitzero"`
	Password string       `json:"password"`
}

// NewRecord builds a record from optional string pointers as they come out
// of flag parsing.
func NewRecord(website string, username, mail *string, password string) Record {
	return Record{
		Website:  website,
		Username: FromPtr(username),
		Mail:     FromPtr(mail),
		Password: password,
	}
}

// Masked returns a copy with the password replaced by MaskedPassword.
func (r Record) Masked() Record {
	r.Password = MaskedPassword
	return r
}

// Identity returns the first available account identifier of the record,
// username before mail.
func (r Record) Identity() string {
	if u, ok := r.Username.Get(); ok {
		return u
	}
	return r.Mail.OrEmpty()
}

// String never includes the password.
func (r Record) String() string {
	if id := r.Identity(); id != "" {
		return fmt.Sprintf("%s (%s)", r.Website, id)
	}
	return r.Website
}
