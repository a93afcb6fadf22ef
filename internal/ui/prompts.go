package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#AD8EE6"})

	promptSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#00FF00"})

	promptUnselectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})

	promptCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#AD8EE6"})

	promptDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// ============================================================================
// Yes/No confirmation
// ============================================================================

type confirmModel struct {
	question  string
	selected  bool
	confirmed bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "y", "Y":
			m.selected = true
		case "right", "l", "n", "N":
			m.selected = false
		case "tab":
			m.selected = !m.selected
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("? "+m.question) + "\n\n")

	yesStyle, noStyle := promptUnselectedStyle, promptUnselectedStyle
	yesCursor, noCursor := "  ", "  "
	if m.selected {
		yesStyle = promptSelectedStyle
		yesCursor = promptCursorStyle.Render("❯ ")
	} else {
		noStyle = promptSelectedStyle
		noCursor = promptCursorStyle.Render("❯ ")
	}
	b.WriteString(yesCursor + yesStyle.Render("Yes") + "    ")
	b.WriteString(noCursor + noStyle.Render("No") + "\n\n")
	b.WriteString(promptDimStyle.Render("  ← → to select • enter to confirm • esc to cancel"))
	return b.String()
}

// Confirm asks a yes/no question. When interactive is false the prompt is
// skipped and defaultYes is returned, so scripted runs never block.
func Confirm(question string, defaultYes bool, interactive bool) (bool, error) {
	if !interactive {
		return defaultYes, nil
	}
	model, err := tea.NewProgram(confirmModel{question: question, selected: defaultYes}).Run()
	if err != nil {
		return false, err
	}
	m := model.(confirmModel)
	if m.cancelled || !m.confirmed {
		return false, nil
	}
	return m.selected, nil
}

// ============================================================================
// Single-choice select
// ============================================================================

type selectModel struct {
	title     string
	options   []string
	cursor    int
	confirmed bool
	cancelled bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("? "+m.title) + "\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(promptCursorStyle.Render("❯ ") + promptSelectedStyle.Render(opt) + "\n")
		} else {
			b.WriteString("  " + promptUnselectedStyle.Render(opt) + "\n")
		}
	}
	b.WriteString("\n" + promptDimStyle.Render("  ↑ ↓ to move • enter to confirm • esc to cancel"))
	return b.String()
}

// Select prompts for a single choice among options. In non-interactive mode
// the first option wins, matching the registry's first-match convention.
func Select(title string, options []string, interactive bool) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}
	if !interactive {
		return options[0], nil
	}
	model, err := tea.NewProgram(selectModel{title: title, options: options}).Run()
	if err != nil {
		return "", err
	}
	m := model.(selectModel)
	if m.cancelled || !m.confirmed {
		return "", fmt.Errorf("selection cancelled")
	}
	return m.options[m.cursor], nil
}

// ============================================================================
// Text input
// ============================================================================

type inputModel struct {
	title     string
	input     textinput.Model
	confirmed bool
	cancelled bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return promptTitleStyle.Render("? "+m.title) + "\n\n" + m.input.View() + "\n"
}

// Input prompts for a line of text. Non-interactive mode returns the
// placeholder default.
func Input(title, placeholder string, interactive bool) (string, error) {
	if !interactive {
		return placeholder, nil
	}
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	model, err := tea.NewProgram(inputModel{title: title, input: ti}).Run()
	if err != nil {
		return "", err
	}
	m := model.(inputModel)
	if m.cancelled {
		return "", fmt.Errorf("input cancelled")
	}
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		value = placeholder
	}
	return value, nil
}
