// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package vault is the ordered collection of password records together with
// its plain-text export format and its sealed (encrypted) form.
package vault

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/toeirei/cithare/internal/model"
)

// ChangeStatus reports what ReplaceOrAdd did.
type ChangeStatus int

const (
	Added ChangeStatus = iota
	Replaced
)

func (c ChangeStatus) String() string {
	if c == Replaced {
		return "replaced"
	}
	return "added"
}

// Vault keeps records in insertion order. It is not safe for concurrent use.
type Vault struct {
	records []model.Record
}

func New(records ...model.Record) *Vault {
	v := &Vault{}
	v.records = append(v.records, records...)
	return v
}

func (v *Vault) Len() int { return len(v.records) }

// Records returns a copy of the records in order.
func (v *Vault) Records() []model.Record {
	out := make([]model.Record, len(v.records))
	copy(out, v.records)
	return out
}

// Add appends r, even when a record for the same website exists.
func (v *Vault) Add(r model.Record) {
	v.records = append(v.records, r)
}

// Remove deletes every record for website and returns how many were removed.
func (v *Vault) Remove(website string) int {
	before := len(v.records)
	v.Filter(func(r model.Record) bool { return r.Website != website })
	return before - len(v.records)
}

// RemoveAll empties the vault and returns how many records it held.
func (v *Vault) RemoveAll() int {
	n := len(v.records)
	v.records = nil
	return n
}

// Filter keeps only the records for which keep returns true.
func (v *Vault) Filter(keep func(model.Record) bool) {
	kept := v.records[:0]
	for _, r := range v.records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	clear(v.records[len(kept):])
	v.records = kept
}

// FilterRegex keeps the records whose website matches pattern, ignoring case.
func (v *Vault) FilterRegex(pattern string) error {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return fmt.Errorf("invalid website pattern: %w", err)
	}
	v.Filter(func(r model.Record) bool { return re.MatchString(r.Website) })
	return nil
}

// Narrow keeps the records for website. With regex set the website is a
// pattern that has to match exactly one record.
func (v *Vault) Narrow(website string, regex bool) error {
	if !regex {
		v.Filter(func(r model.Record) bool { return r.Website == website })
		return nil
	}
	if err := v.FilterRegex(website); err != nil {
		return err
	}
	switch len(v.records) {
	case 0:
		return fmt.Errorf("%w: %s", ErrNoMatch, website)
	case 1:
		return nil
	default:
		sites := make([]string, len(v.records))
		for i, r := range v.records {
			sites[i] = r.Website
		}
		return fmt.Errorf("%w: %s", ErrAmbiguousMatch, strings.Join(sites, ", "))
	}
}

// Lookup returns the first record for website.
func (v *Vault) Lookup(website string) (model.Record, bool) {
	for _, r := range v.records {
		if r.Website == website {
			return r, true
		}
	}
	return model.Record{}, false
}

// ReplaceOrAdd updates the first record for website or appends a new one.
// On replace, absent username or mail keep their current value.
func (v *Vault) ReplaceOrAdd(website, password string, username, mail model.OptionalText) ChangeStatus {
	for i := range v.records {
		r := &v.records[i]
		if r.Website != website {
			continue
		}
		r.Password = password
		r.Username = username.Or(r.Username)
		r.Mail = mail.Or(r.Mail)
		return Replaced
	}
	v.Add(model.Record{Website: website, Username: username, Mail: mail, Password: password})
	return Added
}
