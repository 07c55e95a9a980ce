// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"strings"
	"testing"

	"github.com/toeirei/cithare/internal/model"
)

func TestText_Layout(t *testing.T) {
	v := New(model.Record{Website: "a.com", Username: model.Some("bob"), Password: "pw"})

	want := strings.Join([]string{
		"website|username|mail|password|",
		"-------------------------------",
		"a.com  |bob     |    |pw      |",
		"-------------------------------",
		"",
	}, "\n")
	if got := v.Text(); got != want {
		t.Fatalf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_EmptyVault(t *testing.T) {
	got := New().Text()
	if got != "website|username|mail|password|\n"+strings.Repeat("-", 31)+"\n" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestParseText_ReadsExport(t *testing.T) {
	v := New(
		model.Record{Website: "a.com", Username: model.Some("bob"), Password: "pw"},
		model.Record{Website: "longer-site.example", Mail: model.Some("x@y.z"), Password: "p@ss word"},
		model.Record{Website: "both.io", Username: model.Some("u"), Mail: model.Some("m@b.io"), Password: "z"},
	)

	got := ParseText(v.Text()).Records()
	want := v.Records()
	if len(got) != len(want) {
		t.Fatalf("parsed %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseText_SkipsMalformedLines(t *testing.T) {
	text := strings.Join([]string{
		"website|username|mail|password|",
		"----",
		"only|three|parts",
		"----",
		"",
		"ok.com|   |m@ok.com|secret|",
		"----",
	}, "\n")

	got := ParseText(text).Records()
	if len(got) != 1 {
		t.Fatalf("parsed %d records: %+v", len(got), got)
	}
	r := got[0]
	if r.Website != "ok.com" || r.Username.IsSet() || r.Mail.OrEmpty() != "m@ok.com" || r.Password != "secret" {
		t.Fatalf("record = %+v", r)
	}
}
