// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/cithare/internal/model"
)

func sample() *Vault {
	return New(
		model.Record{Website: "github.com", Username: model.Some("octo"), Password: "gh-pw"},
		model.Record{Website: "mail.example", Mail: model.Some("me@example.org"), Password: "m-pw"},
		model.Record{Website: "gitlab.com", Username: model.Some("fox"), Password: "gl-pw"},
	)
}

func websites(v *Vault) string {
	var out []string
	for _, r := range v.Records() {
		out = append(out, r.Website)
	}
	return strings.Join(out, ",")
}

func TestVault_AddKeepsOrderAndDuplicates(t *testing.T) {
	v := sample()
	v.Add(model.Record{Website: "github.com", Password: "second"})
	if got := websites(v); got != "github.com,mail.example,gitlab.com,github.com" {
		t.Fatalf("order = %s", got)
	}
	if v.Len() != 4 {
		t.Fatalf("Len = %d", v.Len())
	}
}

func TestVault_RemoveCountsEveryMatch(t *testing.T) {
	v := sample()
	v.Add(model.Record{Website: "github.com", Password: "second"})

	if n := v.Remove("github.com"); n != 2 {
		t.Fatalf("removed %d, want 2", n)
	}
	if n := v.Remove("nope"); n != 0 {
		t.Fatalf("removed %d for unknown site", n)
	}
	if got := websites(v); got != "mail.example,gitlab.com" {
		t.Fatalf("remaining = %s", got)
	}
	if n := v.RemoveAll(); n != 2 || v.Len() != 0 {
		t.Fatalf("RemoveAll = %d, Len = %d", n, v.Len())
	}
}

func TestVault_RecordsIsACopy(t *testing.T) {
	v := sample()
	recs := v.Records()
	recs[0].Password = "tampered"
	if r, _ := v.Lookup("github.com"); r.Password != "gh-pw" {
		t.Fatalf("Records leaked internal storage")
	}
}

func TestVault_ReplaceOrAdd(t *testing.T) {
	v := sample()

	if st := v.ReplaceOrAdd("github.com", "new-pw", model.None(), model.Some("o@gh.io")); st != Replaced {
		t.Fatalf("status = %s", st)
	}
	r, ok := v.Lookup("github.com")
	if !ok || r.Password != "new-pw" {
		t.Fatalf("record not replaced: %+v", r)
	}
	if u, _ := r.Username.Get(); u != "octo" {
		t.Fatalf("absent username overwrote the old one: %q", u)
	}
	if m, _ := r.Mail.Get(); m != "o@gh.io" {
		t.Fatalf("mail = %q", m)
	}

	if st := v.ReplaceOrAdd("new.site", "pw", model.Some("me"), model.None()); st != Added {
		t.Fatalf("status = %s", st)
	}
	if v.Len() != 4 {
		t.Fatalf("Len = %d", v.Len())
	}
}

func TestVault_NarrowExact(t *testing.T) {
	v := sample()
	if err := v.Narrow("gitlab.com", false); err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	if got := websites(v); got != "gitlab.com" {
		t.Fatalf("narrowed to %s", got)
	}

	v = sample()
	if err := v.Narrow("GitLab.com", false); err != nil || v.Len() != 0 {
		t.Fatalf("exact match should be case-sensitive: err=%v len=%d", err, v.Len())
	}
}

func TestVault_NarrowRegex(t *testing.T) {
	v := sample()
	if err := v.Narrow("^MAIL", true); err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	if got := websites(v); got != "mail.example" {
		t.Fatalf("narrowed to %s", got)
	}

	v = sample()
	err := v.Narrow("git", true)
	if !errors.Is(err, ErrAmbiguousMatch) {
		t.Fatalf("expected ErrAmbiguousMatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "github.com, gitlab.com") {
		t.Fatalf("conflict list missing: %v", err)
	}

	v = sample()
	if err := v.Narrow("bitbucket", true); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}

	v = sample()
	if err := v.Narrow("(", true); err == nil {
		t.Fatalf("expected an error for an invalid pattern")
	}
}
