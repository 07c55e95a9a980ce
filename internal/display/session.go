// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package display

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/toeirei/cithare/internal/logging"
	"github.com/toeirei/cithare/internal/model"
)

// ErrTerminalInit is returned when the terminal cannot enter display mode.
var ErrTerminalInit = errors.New("terminal could not enter display mode")

// ErrSessionState is returned when an operation is called in the wrong state.
var ErrSessionState = errors.New("invalid display session state")

// ErrRowIndex is returned by DrawOneRow for a negative index.
var ErrRowIndex = errors.New("row index out of range")

// State is the lifecycle position of a Session.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateRendered
	StateAwaitingDismiss
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRendered:
		return "rendered"
	case StateAwaitingDismiss:
		return "awaiting-dismiss"
	case StateTornDown:
		return "torn-down"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options controls how long a rendered grid stays on screen.
type Options struct {
	// Hold is the minimum time the grid stays visible before a key can
	// dismiss it.
	Hold time.Duration
	// WaitForKey keeps the grid up after Hold until a key is pressed.
	WaitForKey bool

	Style       tcell.Style
	HeaderStyle tcell.Style
}

// DefaultOptions mirrors the historical behaviour: three seconds, then a key.
func DefaultOptions() Options {
	return Options{
		Hold:        3 * time.Second,
		WaitForKey:  true,
		Style:       tcell.StyleDefault,
		HeaderStyle: tcell.StyleDefault.Bold(true),
	}
}

// Session owns a terminal for one show/dismiss cycle. It is not safe for
// concurrent use and cannot be reopened once torn down.
type Session struct {
	term  Terminal
	opts  Options
	state State
	rows  int

	sleep func(time.Duration)
}

// NewSession binds a session to term. The terminal is untouched until Open.
func NewSession(term Terminal, opts Options) *Session {
	return &Session{term: term, opts: opts, sleep: time.Sleep}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Rows returns how many record rows have been drawn.
func (s *Session) Rows() int { return s.rows }

// Run performs a whole session: open, render, hold and wait, tear down.
// Once Open succeeds the terminal is restored on every return path,
// including a panic while drawing.
func (s *Session) Run(records []model.Record, widths ColumnWidths) error {
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	if err := s.Render(records, widths); err != nil {
		return err
	}
	return s.Await()
}

// Open puts the terminal into display mode.
func (s *Session) Open() error {
	if s.state != StateUninitialized {
		return fmt.Errorf("%w: open while %s", ErrSessionState, s.state)
	}
	if err := s.term.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrTerminalInit, err)
	}
	s.term.Clear()
	s.state = StateInitialized
	return nil
}

// Render draws the header followed by one row per record, in order. The
// terminal is flushed after each row.
func (s *Session) Render(records []model.Record, widths ColumnWidths) error {
	if s.state != StateInitialized {
		return fmt.Errorf("%w: render while %s", ErrSessionState, s.state)
	}
	canvasWidth, _ := Canvas(widths, len(records))

	DrawRow(s.term, rowRegion(HeaderOffset, canvasWidth), widths, HeaderFields(), s.opts.HeaderStyle)
	s.term.Show()

	for i, r := range records {
		s.drawRecord(r, i, widths, canvasWidth)
	}
	s.state = StateRendered
	return nil
}

// DrawOneRow draws a single record at index without touching the rest of
// the grid. It is meant for revealing records one at a time on an open
// session.
func (s *Session) DrawOneRow(record model.Record, index int, widths ColumnWidths) error {
	if s.state != StateInitialized && s.state != StateRendered {
		return fmt.Errorf("%w: draw row while %s", ErrSessionState, s.state)
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrRowIndex, index)
	}
	canvasWidth, _ := Canvas(widths, 0)
	s.drawRecord(record, index, widths, canvasWidth)
	return nil
}

func (s *Session) drawRecord(r model.Record, index int, widths ColumnWidths, canvasWidth int) {
	DrawRow(s.term, rowRegion(RowOffset(index), canvasWidth), widths, RecordFields(r), s.opts.Style)
	s.term.Show()
	s.rows++
}

// Await holds the grid for the configured duration and then, if asked to,
// blocks until a key is pressed. The two happen in sequence: a key pressed
// during the hold only takes effect once the hold is over.
func (s *Session) Await() error {
	if s.state != StateRendered {
		return fmt.Errorf("%w: await while %s", ErrSessionState, s.state)
	}
	s.state = StateAwaitingDismiss

	if s.opts.Hold > 0 {
		s.sleep(s.opts.Hold)
	}
	if s.opts.WaitForKey {
		s.waitForKey()
	}
	return nil
}

func (s *Session) waitForKey() {
	for {
		switch s.term.PollEvent().(type) {
		case nil:
			// the screen was finalized underneath us
			return
		case *tcell.EventKey:
			return
		}
	}
}

// Close restores the terminal. It runs at most once per session and is a
// no-op when Open never succeeded.
func (s *Session) Close() {
	if s.state == StateUninitialized || s.state == StateTornDown {
		return
	}
	s.term.Fini()
	s.state = StateTornDown
	logging.Debugf("display: session closed after %d rows", s.rows)
}
