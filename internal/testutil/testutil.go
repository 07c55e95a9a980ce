// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds in-memory doubles for the user and the terminal so
// command tests run without a tty.
package testutil

import (
	"errors"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/toeirei/cithare/internal/security"
	"github.com/toeirei/cithare/ui/prompt"
)

// ErrScriptExhausted is returned when a fake runs out of scripted answers.
var ErrScriptExhausted = errors.New("test script exhausted")

// FakePrompter answers password prompts and yes/no questions from scripts
// and records every prompt it was shown.
type FakePrompter struct {
	Passwords []string
	Answers   []bool
	Asked     []string
}

func (f *FakePrompter) Password(msg string) (security.Secret, error) {
	f.Asked = append(f.Asked, msg)
	if len(f.Passwords) == 0 {
		return nil, ErrScriptExhausted
	}
	pw := f.Passwords[0]
	f.Passwords = f.Passwords[1:]
	return security.FromString(pw), nil
}

// ConfirmPassword reads two scripted passwords and fails with
// prompt.ErrPasswordMismatch when they differ.
func (f *FakePrompter) ConfirmPassword(first, confirm string) (security.Secret, error) {
	a, err := f.Password(first)
	if err != nil {
		return nil, err
	}
	b, err := f.Password(confirm)
	if err != nil {
		return nil, err
	}
	if !a.Equal(b) {
		return nil, prompt.ErrPasswordMismatch
	}
	return a, nil
}

func (f *FakePrompter) Confirm(question string, defaultYes bool) (bool, error) {
	f.Asked = append(f.Asked, question)
	if len(f.Answers) == 0 {
		return false, ErrScriptExhausted
	}
	a := f.Answers[0]
	f.Answers = f.Answers[1:]
	return a, nil
}

// SimTerminal is a tcell simulation screen that reports an immediate key
// press, counts lifecycle calls and records the order of blocking steps.
// The grid is captured on Fini because the simulation screen drops its
// buffer once finalized.
type SimTerminal struct {
	tcell.SimulationScreen

	mu            sync.Mutex
	width, height int
	lines         []string

	// InitErr, when set, is returned by Init without touching the screen.
	InitErr error
	Inits   int
	Finis   int
	Shows   int
	// Trace lists "key" and "fini" steps, plus whatever the test appends.
	Trace []string
}

func NewSimTerminal(width, height int) *SimTerminal {
	return &SimTerminal{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		width:            width,
		height:           height,
	}
}

func (s *SimTerminal) Init() error {
	s.Inits++
	if s.InitErr != nil {
		return s.InitErr
	}
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SimulationScreen.SetSize(s.width, s.height)
	return nil
}

func (s *SimTerminal) Show() {
	s.Shows++
	s.SimulationScreen.Show()
}

// PollEvent reports an immediate key press.
func (s *SimTerminal) PollEvent() tcell.Event {
	s.Trace = append(s.Trace, "key")
	return &tcell.EventKey{}
}

func (s *SimTerminal) Fini() {
	s.mu.Lock()
	s.Finis++
	s.Trace = append(s.Trace, "fini")
	s.lines = s.capture()
	s.mu.Unlock()
	s.SimulationScreen.Fini()
}

func (s *SimTerminal) capture() []string {
	lines := make([]string, s.height)
	for y := range lines {
		var b strings.Builder
		for x := 0; x < s.width; x++ {
			r, _, _, _ := s.SimulationScreen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Line returns row y of the live buffer, or of the captured grid once the
// terminal has been finalized.
func (s *SimTerminal) Line(y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Finis > 0 {
		return s.lines[y]
	}
	return s.capture()[y]
}

// At returns n runes of row y starting at column x.
func (s *SimTerminal) At(x, y, n int) string {
	runes := []rune(s.Line(y))
	if x >= len(runes) {
		return ""
	}
	return string(runes[x:min(x+n, len(runes))])
}

// Text returns the grid as it was when the terminal was finalized.
func (s *SimTerminal) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.lines, "\n")
}
