package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/gradient"
	"github.com/vovakirdan/termtint/internal/theme"
)

// Demo tabs
const (
	tabPalette = iota
	tabTransforms
	tabGradient
	tabCount
)

const amountStep = 0.05

var tabNames = [tabCount]string{"Palette", "Transforms", "Gradient"}

// DemoModel is the Bubble Tea model for the interactive theme preview.
type DemoModel struct {
	theme    *theme.Theme
	tab      int
	cursor   int // Selected ANSI index
	amount   float64
	width    int
	height   int
	help     help.Model
	keys     DemoKeyMap
	quitting bool
}

// NewDemoModel creates a demo model for the given theme.
func NewDemoModel(th *theme.Theme) DemoModel {
	h := help.New()
	h.ShowAll = false

	return DemoModel{
		theme:  th,
		cursor: 1, // Start on red; index 0 often matches the background
		amount: 0.3,
		help:   h,
		keys:   DefaultDemoKeyMap(),
	}
}

// Init initializes the demo model.
func (m DemoModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the demo.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount

		case key.Matches(msg, m.keys.PrevTab):
			m.tab--
			if m.tab < 0 {
				m.tab = tabCount - 1
			}

		case key.Matches(msg, m.keys.Up):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = 15
			}

		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % 16

		case key.Matches(msg, m.keys.Increase):
			m.amount += amountStep
			if m.amount > 1 {
				m.amount = 1
			}

		case key.Matches(msg, m.keys.Decrease):
			m.amount -= amountStep
			if m.amount < 0 {
				m.amount = 0
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// View renders the demo.
func (m DemoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabTransforms:
		b.WriteString(m.transformsView())
	case tabGradient:
		b.WriteString(m.gradientView())
	default:
		b.WriteString(m.paletteView())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the tab bar with the active tab highlighted.
func (m DemoModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)

	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(tabs, " ")
}

// paletteView lists the 16 colors with the cursor on the selected one.
func (m DemoModel) paletteView() string {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		c := m.theme.ANSI(i)
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%2d %-8s %s", marker, i, colorNames[i], c.Inverse().Render("      "))
		if rgb, ok := c.RGB(); ok {
			line += "  " + c.Render(rgb.Hex())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// transformsView shows every transform applied to the selected color at the
// current amount.
func (m DemoModel) transformsView() string {
	c := m.theme.ANSI(m.cursor)

	var b strings.Builder
	fmt.Fprintf(&b, "color %d (%s), amount %.2f\n\n", m.cursor, colorNames[m.cursor], m.amount)

	if _, ok := c.RGB(); !ok {
		b.WriteString("No palette data for this terminal; transforms are inert.\n")
		b.WriteString(c.Render("This is the color as the terminal draws it."))
		b.WriteString("\n")
		return b.String()
	}

	rows := []struct {
		name  string
		color theme.Color
	}{
		{"base", c},
		{"saturate", c.Saturate(m.amount)},
		{"desaturate", c.Desaturate(m.amount)},
		{"lighten", c.Lighten(m.amount)},
		{"darken", c.Darken(m.amount)},
		{"rotate", c.Rotate(m.amount * 360)},
		{"fade", c.Fade(m.amount)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-11s %s %s\n",
			r.name,
			r.color.Inverse().Render("        "),
			r.color.Render("sample text"),
		)
	}
	return b.String()
}

// gradientView draws the selected color fading to the opposite side of the
// palette under each hue path.
func (m DemoModel) gradientView() string {
	from, okFrom := m.theme.ANSI(m.cursor).RGB()
	to, okTo := m.theme.ANSI((m.cursor+8)%16).RGB()
	if !okFrom || !okTo {
		return "Gradients need real palette data; this terminal gave none.\n"
	}

	width := m.width - 12
	if width < 16 {
		width = 16
	}
	if width > 64 {
		width = 64
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s to %s\n\n", from.Hex(), to.Hex())
	paths := []struct {
		name string
		path colormath.HuePath
	}{
		{"shorter", colormath.ShorterPath},
		{"longer", colormath.LongerPath},
		{"increasing", colormath.IncreasingPath},
		{"decreasing", colormath.DecreasingPath},
	}
	for _, p := range paths {
		g, err := gradient.New(p.path, gradient.Stop{Position: 0, Color: from}, gradient.Stop{Position: 1, Color: to})
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%-11s ", p.name)
		for _, rgb := range g.Samples(width) {
			b.WriteString(block(m.theme.Capabilities.Level, rgb, 1))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// IsQuitting returns true if the user requested to quit.
func (m DemoModel) IsQuitting() bool {
	return m.quitting
}

// RunDemo runs the demo screen in the local terminal.
func RunDemo(th *theme.Theme) error {
	p := tea.NewProgram(NewDemoModel(th), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
