package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// MenuChoice is what the user picked on the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

type menuItem struct {
	title  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", MenuPlay},
	{"Difficulty", MenuNone},
	{"High Scores", MenuScores},
	{"Quit", MenuQuit},
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "a")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "d")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets
	width      int
	height     int
	keys       MenuKeyMap
	choice     MenuChoice
}

// NewMenuModel creates a menu with the given preset preselected.
func NewMenuModel(preset config.DifficultyPreset, width, height int) MenuModel {
	return MenuModel{
		difficulty: max(slices.Index(config.Presets, preset), 0),
		width:      width,
		height:     height,
		keys:       DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(config.Presets)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if menuItems[m.cursor].title == "Difficulty" {
			m.difficulty = (m.difficulty + n - 1) % n
		}

	case key.Matches(msg, m.keys.Right):
		if menuItems[m.cursor].title == "Difficulty" {
			m.difficulty = (m.difficulty + 1) % n
		}

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		item := menuItems[m.cursor]
		if item.choice == MenuNone {
			m.difficulty = (m.difficulty + 1) % n
			return m, nil
		}
		m.choice = item.choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuQuit {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#800080"))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S N A K E  "), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		label := item.title
		if item.choice == MenuNone {
			label = fmt.Sprintf("%s: < %s >", item.title, m.Difficulty())
		}
		line := cursor + label
		if i == m.cursor {
			line = selectedStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(hintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Width      int
	Height     int
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(preset config.DifficultyPreset, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(preset, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Difficulty: preset, Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Difficulty: preset, Width: width, Height: height}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Width:      m.width,
		Height:     m.height,
	}, nil
}
