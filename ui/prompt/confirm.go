// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cithare/internal/i18n"
)

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
	Cancel key.Binding
}

var defaultConfirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "default"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// confirmModel is a one-question yes/no bubbletea model.
type confirmModel struct {
	question   string
	defaultYes bool
	keys       confirmKeyMap

	answer bool
	done   bool
}

func newConfirmModel(question string, defaultYes bool) confirmModel {
	return confirmModel{question: question, defaultYes: defaultYes, keys: defaultConfirmKeys}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Yes):
		m.answer = true
	case key.Matches(km, m.keys.No), key.Matches(km, m.keys.Cancel):
		m.answer = false
	case key.Matches(km, m.keys.Accept):
		m.answer = m.defaultYes
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return questionStyle.Render(m.question) + " " + hintStyle.Render(hint(m.defaultYes)) + " "
}

func hint(defaultYes bool) string {
	if defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

// Confirm asks a yes/no question. On a terminal it runs an interactive
// prompt where enter picks the default and esc answers no. Piped input is
// read line by line: empty picks the default, anything other than y or n
// asks again.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	if _, ok := p.terminalFd(); ok {
		final, err := tea.NewProgram(
			newConfirmModel(question, defaultYes),
			tea.WithInput(p.in),
			tea.WithOutput(p.out),
		).Run()
		if err != nil {
			return false, fmt.Errorf("confirm prompt: %w", err)
		}
		m := final.(confirmModel)
		fmt.Fprintf(p.out, "%s %s\n", question, answerText(m.answer))
		return m.answer, nil
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", question, hint(defaultYes))
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "":
			return defaultYes, nil
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		default:
			fmt.Fprintln(p.out, i18n.T("prompt.select_yn"))
		}
	}
}

func answerText(yes bool) string {
	if yes {
		return i18n.T("prompt.yes")
	}
	return i18n.T("prompt.no")
}
