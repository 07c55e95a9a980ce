// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt reads master passwords, record passwords and yes/no answers
// from the user. Hidden entry and the interactive confirm only kick in on a
// real terminal; piped input is read line by line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toeirei/cithare/internal/security"
	"golang.org/x/term"
)

var (
	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords don't match")
	// ErrNoInput is returned when the input ends before an answer.
	ErrNoInput = errors.New("no input")
)

type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// Stdio is the Prompter used by the command line.
func Stdio() *Prompter { return New(os.Stdin, os.Stderr) }

func (p *Prompter) terminalFd() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Password prints msg and reads one password without echo.
func (p *Prompter) Password(msg string) (security.Secret, error) {
	fmt.Fprint(p.out, msg)
	if fd, ok := p.terminalFd(); ok {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return security.Secret(b), nil
	}

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	return security.FromString(line), nil
}

// ConfirmPassword asks twice and fails with ErrPasswordMismatch when the two
// entries differ.
func (p *Prompter) ConfirmPassword(first, confirm string) (security.Secret, error) {
	a, err := p.Password(first)
	if err != nil {
		return nil, err
	}
	b, err := p.Password(confirm)
	if err != nil {
		a.Zero()
		return nil, err
	}
	defer b.Zero()
	if !a.Equal(b) {
		a.Zero()
		return nil, ErrPasswordMismatch
	}
	return a, nil
}

// readLine returns the next line without its terminator. A final line
// without newline is accepted; an empty stream is ErrNoInput.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
