package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/langcolors/pkg/chain"
	"github.com/matzehuels/langcolors/pkg/errors"
	"github.com/matzehuels/langcolors/pkg/pipeline"
	"github.com/matzehuels/langcolors/pkg/report"
)

// nearestCommand lists the languages whose colors are closest to one language.
func (c *CLI) nearestCommand() *cobra.Command {
	var (
		flags sourceFlags
		k     int
	)

	cmd := &cobra.Command{
		Use:   "nearest <language>",
		Short: "Show the languages with the closest colors",
		Example: `  langcolors nearest Go
  langcolors nearest golang -k 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLanguageName(args[0]); err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Prepare(ctx, flags.options(cmd, c.cfg))
			if err != nil {
				return err
			}

			name, neighbors, err := lookupNearest(result, args[0], k)
			if err != nil {
				return err
			}

			origin, _ := result.Set.Lookup(name)
			printKeyValue("Language", report.Swatch(chain.Entry{Name: name, Color: origin}))
			printKeyValue("Color", origin.Hex())
			fmt.Fprintln(cmd.OutOrStdout(), neighborTable(neighbors).Render())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&k, "k", "k", 5, "number of neighbors (0 for all)")

	return cmd
}

// lookupNearest resolves query against the catalog (name, case or alias)
// and returns the canonical name with its k nearest neighbors.
func lookupNearest(result *pipeline.Result, query string, k int) (string, []chain.Neighbor, error) {
	lang, ok := result.Catalog.Lookup(query)
	if !ok {
		return "", nil, errors.New(errors.ErrCodeLanguageNotFound, "unknown language %q", query)
	}
	neighbors, ok := chain.Nearest(result.Set, lang.Name, k)
	if !ok {
		return "", nil, errors.New(errors.ErrCodeLanguageNotFound, "language %q has no usable color", lang.Name)
	}
	return lang.Name, neighbors, nil
}

func neighborTable(neighbors []chain.Neighbor) *table.Table {
	rows := make([][]string, len(neighbors))
	for i, n := range neighbors {
		rows[i] = []string{fmt.Sprint(i + 1), report.Swatch(n.Entry), n.Color.Hex(), fmt.Sprintf("%.1f", n.Distance)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Language", "Color", "Distance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			return lipgloss.NewStyle()
		})
}
