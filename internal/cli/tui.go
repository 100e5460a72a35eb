package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/langcolors/pkg/chain"
	"github.com/matzehuels/langcolors/pkg/report"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ChainModel - Interactive color browser
// =============================================================================

// ChainModel is the bubbletea model for scrolling through both orderings.
type ChainModel struct {
	Set   chain.Set
	Chain chain.Chain

	ByName bool // show the name ordering instead of the chain
	Cursor int
	Height int
	Offset int

	// Neighbors of the entry under the cursor, filled on enter.
	Neighbors []chain.Neighbor
}

// NewChainModel creates a browser starting on the nearest-color ordering.
func NewChainModel(set chain.Set, c chain.Chain) ChainModel {
	return ChainModel{
		Set:    set,
		Chain:  c,
		Height: 15,
	}
}

func (m ChainModel) entries() []chain.Entry {
	if m.ByName {
		return m.Set.Entries()
	}
	return m.Chain
}

func (m ChainModel) Init() tea.Cmd {
	return nil
}

func (m ChainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.entries())
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "pgup":
			m.moveTo(m.Cursor - m.Height)
		case "pgdown", " ":
			m.moveTo(m.Cursor + m.Height)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(n - 1)
		case "tab", "o":
			m.ByName = !m.ByName
			m.Neighbors = nil
			m.moveTo(0)
		case "enter":
			if n > 0 {
				m.Neighbors, _ = chain.Nearest(m.Set, m.entries()[m.Cursor].Name, 5)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// moveTo places the cursor at i, clamped, and scrolls it into view.
func (m *ChainModel) moveTo(i int) {
	n, prev := len(m.entries()), m.Cursor
	m.Cursor = max(0, min(i, n-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	if m.Cursor != prev {
		m.Neighbors = nil
	}
}

func (m ChainModel) View() string {
	var b strings.Builder

	title := "By Nearest Color"
	if m.ByName {
		title = "By Name"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⇥ switch ordering  ⏎ neighbors  q quit"))
	b.WriteString("\n\n")

	entries := m.entries()
	if len(entries) == 0 {
		b.WriteString(listDimStyle.Render("  no colored languages"))
		return b.String()
	}

	steps := chain.Chain(entries).Steps()
	end := min(m.Offset+m.Height, len(entries))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		step := ""
		if !m.ByName && i > 0 {
			step = fmt.Sprintf("%.1f", steps[i-1])
		}
		rows = append(rows, []string{cursor, report.Swatch(e), e.Color.Hex(), step})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Language", "Color", "Step").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			if m.Offset+row == m.Cursor && col != 1 {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(entries))))

	if len(m.Neighbors) > 0 {
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render("  nearest to " + entries[m.Cursor].Name + ": "))
		parts := make([]string, len(m.Neighbors))
		for i, nb := range m.Neighbors {
			parts[i] = report.Swatch(nb.Entry)
		}
		b.WriteString(strings.Join(parts, " "))
	}

	return b.String()
}
