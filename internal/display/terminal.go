// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import "github.com/gdamore/tcell/v2"

// Terminal is the part of tcell.Screen a Session draws through. A
// tcell.Screen satisfies it directly.
type Terminal interface {
	Init() error
	Fini()
	Clear()
	Show()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	PollEvent() tcell.Event
}

// NewTerminal returns a tcell screen bound to the controlling terminal. The
// screen is not initialized; Session.Open does that.
func NewTerminal() (Terminal, error) {
	return tcell.NewScreen()
}

// Region is a rectangle of terminal cells.
type Region struct {
	X, Y          int
	Width, Height int
}

// rowRegion returns the region of a row whose top border sits at top.
func rowRegion(top, canvasWidth int) Region {
	return Region{X: 0, Y: top, Width: canvasWidth, Height: rowHeight}
}
