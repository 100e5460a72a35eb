package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/langcolors/pkg/chain"
)

var (
	textTitleStyle  = lipgloss.NewStyle().Bold(true)
	textHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	textBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Swatch renders name on a background of its color.
func Swatch(e chain.Entry) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(e.Color.Hex())).
		Foreground(lipgloss.Color(e.Color.Contrast().Hex())).
		Padding(0, 1).
		Render(e.Name)
}

// EntryTable builds a terminal table of entries. withSteps adds a column
// with the distance from the previous row.
func EntryTable(entries []chain.Entry, withSteps bool) *table.Table {
	headers := []string{"#", "Language", "Color"}
	var steps []float64
	if withSteps {
		headers = append(headers, "Step")
		steps = chain.Chain(entries).Steps()
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		row := []string{fmt.Sprint(i + 1), Swatch(e), e.Color.Hex()}
		if withSteps {
			step := ""
			if i > 0 && i-1 < len(steps) {
				step = fmt.Sprintf("%.1f", steps[i-1])
			}
			row = append(row, step)
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(textBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return textHeaderStyle
			}
			return lipgloss.NewStyle()
		})
}

// RenderText renders both orderings as terminal tables.
func RenderText(r Report) string {
	var b strings.Builder
	b.WriteString(textTitleStyle.Render(r.Title))
	b.WriteString("\n\nBy Name\n")
	b.WriteString(EntryTable(r.ByName, false).Render())
	b.WriteString("\n\nBy Nearest Color\n")
	b.WriteString(EntryTable(r.ByNearest, true).Render())
	s := r.Stats()
	fmt.Fprintf(&b, "\n\n%d languages, chain length %d, total distance %.1f\n",
		s.Languages, s.ChainLength, s.TotalDistance)
	return b.String()
}
