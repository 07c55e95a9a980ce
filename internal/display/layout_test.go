// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"testing"

	"github.com/toeirei/cithare/internal/model"
)

func TestCanvas_Formula(t *testing.T) {
	cases := []struct {
		widths      ColumnWidths
		n           int
		wantW, wantH int
	}{
		{ColumnWidths{7, 8, 4, 8}, 0, 33, 2},
		{ColumnWidths{7, 8, 4, 8}, 1, 33, 4},
		{ColumnWidths{0, 0, 0, 0}, 0, 6, 2},
		{ColumnWidths{12, 3, 20, 9}, 10, 50, 22},
	}
	for _, c := range cases {
		w, h := Canvas(c.widths, c.n)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("Canvas(%+v, %d) = (%d, %d), want (%d, %d)", c.widths, c.n, w, h, c.wantW, c.wantH)
		}
	}
}

func TestRowOffset_BandsPartitionCanvas(t *testing.T) {
	const n = 50
	_, height := Canvas(ColumnWidths{}, n)
	prev := HeaderOffset
	for i := 0; i < n; i++ {
		off := RowOffset(i)
		if off < bandHeight {
			t.Fatalf("row %d at %d overlaps the header band", i, off)
		}
		if off <= prev {
			t.Fatalf("row offsets not strictly increasing: %d then %d", prev, off)
		}
		if off-prev != bandHeight {
			t.Fatalf("row %d leaves a gap or overlap: %d after %d", i, off, prev)
		}
		if off+bandHeight > height {
			t.Fatalf("row %d band [%d,%d) outside canvas height %d", i, off, off+bandHeight, height)
		}
		prev = off
	}
}

func TestOffsets_Scenario(t *testing.T) {
	got := ColumnWidths{7, 8, 4, 8}.Offsets()
	want := [4]int{1, 8, 17, 22}
	if got != want {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
}

func TestMeasure_IncludesLabelsAndGlyphWidth(t *testing.T) {
	w := Measure(nil)
	if w != (ColumnWidths{7, 8, 4, 8}) {
		t.Fatalf("header-only widths = %+v", w)
	}

	records := []model.Record{
		{Website: "averyveryverylong.example", Username: model.Some("bob"), Password: "pw"},
		{Website: "日本.jp", Mail: model.Some("someone@example.org"), Password: "0123456789"},
	}
	w = Measure(records)
	if w.Website != len("averyveryverylong.example") {
		t.Fatalf("website width = %d", w.Website)
	}
	if w.Username != len(LabelUsername) {
		t.Fatalf("username width = %d, label should win", w.Username)
	}
	if w.Mail != len("someone@example.org") {
		t.Fatalf("mail width = %d", w.Mail)
	}
	if w.Password != 10 {
		t.Fatalf("password width = %d", w.Password)
	}

	wide := Measure([]model.Record{{Website: "日本日本.jp", Password: "x"}})
	if wide.Website != 11 {
		t.Fatalf("wide glyphs should count double, got %d", wide.Website)
	}
}
