// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("empty Version: got %q", got)
	}
	Version = "v2.0.1"
	if got := VersionOrDefault("dev"); got != "v2.0.1" {
		t.Fatalf("linked Version: got %q", got)
	}
}
