// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/toeirei/cithare/internal/model"
)

// Delimiter separates columns inside a row.
const Delimiter = "|"

// HeaderFields returns the header labels in column order.
func HeaderFields() [4]string {
	return [4]string{LabelWebsite, LabelUsername, LabelMail, LabelPassword}
}

// RecordFields returns the text of each column for r. Absent optional
// fields yield an empty string so the delimiter keeps its position.
func RecordFields(r model.Record) [4]string {
	return [4]string{r.Website, r.Username.OrEmpty(), r.Mail.OrEmpty(), r.Password}
}

// DrawRow draws a bordered row in region with each field at its column
// offset. Text that does not fit is clipped at the right border.
func DrawRow(t Terminal, region Region, widths ColumnWidths, fields [4]string, style tcell.Style) {
	drawBox(t, region, style)

	offsets := widths.Offsets()
	y := region.Y + 1
	for i, text := range fields {
		if i > 0 {
			text = Delimiter + text
		}
		putText(t, region, region.X+offsets[i], y, text, style)
	}
}

// putText writes s from (x, y), stopping before the region's right border.
func putText(t Terminal, region Region, x, y int, s string, style tcell.Style) {
	limit := region.X + region.Width - 1
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		t.SetContent(x, y, r, nil, style)
		x += w
	}
}

// drawBox outlines region. A top corner landing on the bottom corner of the
// row above becomes a tee so stacked rows read as one grid.
func drawBox(t Terminal, region Region, style tcell.Style) {
	if region.Width < 2 || region.Height < 2 {
		return
	}
	left, right := region.X, region.X+region.Width-1
	top, bottom := region.Y, region.Y+region.Height-1

	for x := left + 1; x < right; x++ {
		t.SetContent(x, top, tcell.RuneHLine, nil, style)
		t.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.SetContent(left, y, tcell.RuneVLine, nil, style)
		t.SetContent(right, y, tcell.RuneVLine, nil, style)
	}

	t.SetContent(left, top, joinCorner(t, left, top, tcell.RuneLLCorner, tcell.RuneULCorner, tcell.RuneLTee), nil, style)
	t.SetContent(right, top, joinCorner(t, right, top, tcell.RuneLRCorner, tcell.RuneURCorner, tcell.RuneRTee), nil, style)
	t.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func joinCorner(t Terminal, x, y int, below, corner, tee rune) rune {
	existing, _, _, _ := t.GetContent(x, y)
	if existing == below || existing == tee {
		return tee
	}
	return corner
}
