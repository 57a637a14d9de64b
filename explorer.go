// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// ExplorerModel is the Bubble Tea state of the explorer
type ExplorerModel struct {
	ready bool

	input  textinput.Model
	output viewport.Model

	session *Session

	// Markdown of the page on screen, copied by ctrl+y
	page      string
	status    string
	statusErr bool

	history      []string
	historyIndex int // len(history) when not browsing

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the explorer
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// clipboardMsg reports the outcome of a ctrl+y copy
type clipboardMsg struct {
	err error
}

func NewExplorerModel(session *Session, wordWrap int) ExplorerModel {
	ti := textinput.New()
	ti.Placeholder = "kth 1, rank 20, get Potion of Extreme Speed, choose 2, solve..."
	ti.Prompt = "🧪 "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)

	m := ExplorerModel{
		input:           ti,
		output:          viewport.New(0, 0),
		session:         session,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.showPage(explorerHelp)
	return m
}

func (m ExplorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.runInput()
			return m, nil
		case "ctrl+y":
			page := m.page
			return m, func() tea.Msg {
				return clipboardMsg{err: clipboard.WriteAll(page)}
			}
		case "up":
			m.browseHistory(-1)
			return m, nil
		case "down":
			m.browseHistory(1)
			return m, nil
		case "pgup":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "pgdown":
			m.output.LineDown(m.output.Height)
			return m, nil
		case "home":
			m.output.GotoTop()
			return m, nil
		case "end":
			m.output.GotoBottom()
			return m, nil
		}

		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("📋 Copied page to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// runInput executes the input line and shows its page or error
func (m *ExplorerModel) runInput() {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return
	}
	m.history = append(m.history, input)
	m.historyIndex = len(m.history)
	m.input.SetValue("")

	page, err := m.session.Run(input)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("", false)
	m.showPage(page)
}

// browseHistory moves through past inputs, -1 being older
func (m *ExplorerModel) browseHistory(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIndex = max(0, min(len(m.history), m.historyIndex+step))
	if m.historyIndex == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *ExplorerModel) showPage(page string) {
	m.page = page
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(page); err == nil {
			m.output.SetContent(rendered)
			m.output.GotoTop()
			return
		}
	}
	m.output.SetContent(page)
	m.output.GotoTop()
}

func (m *ExplorerModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *ExplorerModel) updateLayout() {
	m.input.Width = m.width - 8
	m.output.Width = m.width - 4
	m.output.Height = max(1, m.height-10)
}

func (m ExplorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	outputBox := m.styles.Border.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📜 Potion Explorer "),
			m.output.View(),
		))

	inputBox := m.styles.Border.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.input.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		outputBox,
		inputBox,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m ExplorerModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.ErrorMessage.Render(" ❌ " + m.status)
	}
	return m.styles.SuccessMessage.Render(" " + m.status)
}

func (m ExplorerModel) renderHelp() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdown", "ctrl+y", "esc"}
	descs := []string{"run", "history", "scroll", "copy page", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the explorer on the given session
func runExplorer(session *Session, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		NewExplorerModel(session, config.Display.WordWrap),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
