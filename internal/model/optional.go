// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"bytes"
	"encoding/json"
)

// OptionalText is a text value that may be absent. An absent value and a
// present empty string are different states.
type OptionalText struct {
	value string
	set   bool
}

// Some returns a present value.
func Some(s string) OptionalText { return OptionalText{value: s, set: true} }

// None returns an absent value. It is the zero value.
func None() OptionalText { return OptionalText{} }

// FromPtr maps nil to None and anything else to Some.
func FromPtr(s *string) OptionalText {
	if s == nil {
		return None()
	}
	return Some(*s)
}

// Get returns the value and whether it is present.
func (o OptionalText) Get() (string, bool) { return o.value, o.set }

// IsSet reports whether a value is present.
func (o OptionalText) IsSet() bool { return o.set }

// OrEmpty returns the value when present and "" when absent.
func (o OptionalText) OrEmpty() string {
	if v, ok := o.Get(); ok {
		return v
	}
	return ""
}

// Or returns o when present, fallback otherwise.
func (o OptionalText) Or(fallback OptionalText) OptionalText {
	if o.set {
		return o
	}
	return fallback
}

// IsZero lets `omitzero` drop absent values from JSON.
func (o OptionalText) IsZero() bool { return !o.set }

// MarshalJSON encodes absent values as null.
func (o OptionalText) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON accepts a string or null.
func (o *OptionalText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = Some(s)
	return nil
}
