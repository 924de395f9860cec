// Package tui provides a terminal user interface for browsing diagram
// templates. It uses the Bubble Tea framework to create a responsive,
// keyboard-driven gallery with fuzzy search and live filtering.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/toozej/mermaidgen/internal/output"
)

type model struct {
	textInput       textinput.Model
	templates       []Template
	filteredResults []Template
	cursor          int
	err             error
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	scriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// RunTUI starts the terminal user interface for browsing diagram templates.
// It creates a searchable, navigable gallery where users can fuzzy search
// through example diagrams and select one to copy to the clipboard. The
// interface supports keyboard navigation with vim-like keybindings and
// real-time search filtering.
// Returns an error if the TUI fails to start or encounters runtime errors.
func RunTUI() error {
	ti := textinput.New()
	ti.Placeholder = "Search templates..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 50

	templates := Templates()

	m := model{
		textInput:       ti,
		templates:       templates,
		filteredResults: templates,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if len(m.filteredResults) > 0 && m.cursor < len(m.filteredResults) {
				selected := m.filteredResults[m.cursor]
				if err := output.CopyToClipboard(selected.Script); err != nil {
					m.err = err
					return m, nil
				}
				return m, tea.Quit
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.filteredResults)-1 {
				m.cursor++
			}

		default:
			m.textInput, cmd = m.textInput.Update(msg)
			m.filterResults()
			if m.cursor >= len(m.filteredResults) {
				m.cursor = len(m.filteredResults) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}

	case tea.WindowSizeMsg:
		// Handle window resize if needed
	}

	return m, cmd
}

func (m *model) filterResults() {
	query := m.textInput.Value()
	if query == "" {
		m.filteredResults = m.templates
		return
	}

	// Prepare data for fuzzy search
	searchData := make([]string, len(m.templates))
	for i, t := range m.templates {
		searchData[i] = t.Name + " " + t.Kind
	}

	matches := fuzzy.RankFindNormalizedFold(query, searchData)
	m.filteredResults = make([]Template, len(matches))
	for i, match := range matches {
		m.filteredResults[i] = m.templates[match.OriginalIndex]
	}
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress Ctrl+C to exit", m.err)
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("Mermaid Diagram Templates"))
	b.WriteString("\n\n")

	// Search input
	b.WriteString("Search: ")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Results
	if len(m.filteredResults) == 0 {
		b.WriteString("No templates found.\n")
	} else {
		b.WriteString(fmt.Sprintf("Found %d template(s):\n\n", len(m.filteredResults)))

		// Show first few results
		maxDisplay := 5
		if len(m.filteredResults) < maxDisplay {
			maxDisplay = len(m.filteredResults)
		}

		for i := 0; i < maxDisplay; i++ {
			template := m.filteredResults[i]
			cursor := " "
			if m.cursor == i {
				cursor = "▶"
			}

			name := template.Name
			if m.cursor == i {
				name = selectedStyle.Render(name)
			}

			b.WriteString(fmt.Sprintf("%s %s [%s]\n", cursor, name, template.Kind))

			// Show preview of the script for selected item
			if m.cursor == i {
				preview := template.Script
				if len(preview) > 200 {
					preview = preview[:200] + "..."
				}
				b.WriteString(scriptStyle.Render(preview))
				b.WriteString("\n")
			}
		}

		if len(m.filteredResults) > maxDisplay {
			b.WriteString(fmt.Sprintf("\n... and %d more\n", len(m.filteredResults)-maxDisplay))
		}
	}

	// Help
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter select & copy • ctrl+c/esc quit"))

	return b.String()
}
