// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecordString(t *testing.T) {
	r := Record{Website: "a.com", Password: "pw"}
	if got := r.String(); got != "a.com" {
		t.Errorf("unexpected Record.String(): %q", got)
	}

	r.Mail = Some("bob@a.com")
	if got := r.String(); got != "a.com (bob@a.com)" {
		t.Errorf("unexpected Record.String() with mail: %q", got)
	}

	r.Username = Some("bob")
	if got := r.String(); got != "a.com (bob)" {
		t.Errorf("unexpected Record.String() with username: %q", got)
	}
	if strings.Contains(r.String(), "pw") {
		t.Fatalf("String leaked the password: %q", r.String())
	}
}

func TestRecordMaskedLeavesOriginal(t *testing.T) {
	r := Record{Website: "a.com", Password: "secret"}
	m := r.Masked()
	if m.Password != MaskedPassword {
		t.Fatalf("expected masked password, got %q", m.Password)
	}
	if r.Password != "secret" {
		t.Fatalf("Masked mutated the receiver: %q", r.Password)
	}
}

func TestNewRecordFromPointers(t *testing.T) {
	user := "bob"
	r := NewRecord("a.com", &user, nil, "pw")
	if v, ok := r.Username.Get(); !ok || v != "bob" {
		t.Fatalf("expected username bob, got %q (set=%v)", v, ok)
	}
	if r.Mail.IsSet() {
		t.Fatalf("expected mail to be absent")
	}
}

func TestOptionalTextPresenceIsNotEmptiness(t *testing.T) {
	empty := Some("")
	if !empty.IsSet() {
		t.Fatalf("Some(\"\") must be present")
	}
	if None().IsSet() {
		t.Fatalf("None() must be absent")
	}
	if got := None().OrEmpty(); got != "" {
		t.Fatalf("None().OrEmpty() = %q", got)
	}
	if got := Some("x").OrEmpty(); got != "x" {
		t.Fatalf("Some(x).OrEmpty() = %q", got)
	}
	if got := None().Or(Some("fallback")).OrEmpty(); got != "fallback" {
		t.Fatalf("Or did not use fallback: %q", got)
	}
	if got := Some("kept").Or(Some("fallback")).OrEmpty(); got != "kept" {
		t.Fatalf("Or replaced a present value: %q", got)
	}
}

func TestRecordJSONOmitsAbsentFields(t *testing.T) {
	b, err := json.Marshal(Record{Website: "a.com", Username: Some("bob"), Password: "pw"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "mail") {
		t.Fatalf("absent mail should be omitted: %s", b)
	}

	var r Record
	if err := json.Unmarshal([]byte(`{"website":"a.com","username":null,"mail":"m@a.com","password":"pw"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Username.IsSet() {
		t.Fatalf("null username should decode as absent")
	}
	if v, _ := r.Mail.Get(); v != "m@a.com" {
		t.Fatalf("unexpected mail %q", v)
	}
}
