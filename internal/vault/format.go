// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/toeirei/cithare/internal/display"
	"github.com/toeirei/cithare/internal/model"
)

// fieldCount is the number of '|' separated components in a record line.
const fieldCount = 4

// Text renders the vault as the plain export table: a padded header line, a
// dashed rule, then one padded line and one rule per record. Every column is
// followed by '|'.
func (v *Vault) Text() string {
	widths := display.Measure(v.records)
	rule := strings.Repeat("-", widths.Sum()+fieldCount) + "\n"

	var b strings.Builder
	writeLine(&b, widths, display.HeaderFields())
	b.WriteString(rule)
	for _, r := range v.records {
		writeLine(&b, widths, display.RecordFields(r))
		b.WriteString(rule)
	}
	return b.String()
}

func writeLine(b *strings.Builder, widths display.ColumnWidths, fields [4]string) {
	cols := [4]int{widths.Website, widths.Username, widths.Mail, widths.Password}
	for i, f := range fields {
		b.WriteString(f)
		if pad := cols[i] - runewidth.StringWidth(f); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteByte('|')
	}
	b.WriteByte('\n')
}

// ParseText reads the export table produced by Text. Blank lines are
// ignored; of the rest, the first is the header and every second line after
// it is a record. Lines without exactly four components are skipped.
// Whitespace-only username or mail components are absent.
func ParseText(text string) *Vault {
	v := New()
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	for i := 2; i < len(lines); i += 2 {
		if r, ok := parseLine(lines[i]); ok {
			v.Add(r)
		}
	}
	return v
}

func parseLine(line string) (model.Record, bool) {
	var parts []string
	for _, p := range strings.Split(line, "|") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != fieldCount {
		return model.Record{}, false
	}
	return model.Record{
		Website:  strings.TrimRight(parts[0], " "),
		Username: optional(parts[1]),
		Mail:     optional(parts[2]),
		Password: strings.TrimRight(parts[3], " "),
	}, true
}

func optional(s string) model.OptionalText {
	if strings.TrimSpace(s) == "" {
		return model.None()
	}
	return model.Some(strings.TrimRight(s, " "))
}
