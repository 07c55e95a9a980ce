// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"github.com/mattn/go-runewidth"
	"github.com/toeirei/cithare/internal/model"
)

const (
	// canvasOverhead covers the two border columns, the three inner
	// delimiters and the gap before the right border.
	canvasOverhead = 6
	// bandHeight is the number of lines each row advances the canvas.
	bandHeight = 2
	// rowHeight is the height of a row's region. It is one more than the
	// band, so consecutive rows share their horizontal border.
	rowHeight = 3

	// HeaderOffset is the top offset of the header row.
	HeaderOffset = 0
)

// Header labels, in column order.
const (
	LabelWebsite  = "website"
	LabelUsername = "username"
	LabelMail     = "mail"
	LabelPassword = "password"
)

// ColumnWidths holds the glyph width reserved for each column. Callers must
// make every width at least as large as any value rendered in that column.
type ColumnWidths struct {
	Website  int
	Username int
	Mail     int
	Password int
}

// Sum returns the total width of the four columns.
func (w ColumnWidths) Sum() int {
	return w.Website + w.Username + w.Mail + w.Password
}

// Offsets returns the horizontal offset of each field inside a row. The
// offsets of the last three fields are where their delimiter is written.
func (w ColumnWidths) Offsets() [4]int {
	return [4]int{
		1,
		w.Website + 1,
		w.Website + w.Username + 2,
		w.Website + w.Username + w.Mail + 3,
	}
}

// Canvas returns the dimensions of the area needed to draw a header and
// recordCount rows.
func Canvas(widths ColumnWidths, recordCount int) (width, height int) {
	return widths.Sum() + canvasOverhead, (recordCount + 1) * bandHeight
}

// BandOffset returns the top offset of the given band. Band 0 is the header.
func BandOffset(band int) int {
	return band * bandHeight
}

// RowOffset returns the top offset of the record at index.
func RowOffset(index int) int {
	return BandOffset(index + 1)
}

// Measure computes column widths for records, counting the header labels.
// Absent optional fields count as zero.
func Measure(records []model.Record) ColumnWidths {
	w := ColumnWidths{
		Website:  runewidth.StringWidth(LabelWebsite),
		Username: runewidth.StringWidth(LabelUsername),
		Mail:     runewidth.StringWidth(LabelMail),
		Password: runewidth.StringWidth(LabelPassword),
	}
	for _, r := range records {
		w.Website = max(w.Website, runewidth.StringWidth(r.Website))
		w.Username = max(w.Username, runewidth.StringWidth(r.Username.OrEmpty()))
		w.Mail = max(w.Mail, runewidth.StringWidth(r.Mail.OrEmpty()))
		w.Password = max(w.Password, runewidth.StringWidth(r.Password))
	}
	return w
}
