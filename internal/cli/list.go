package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/langcolors/pkg/chain"
	"github.com/matzehuels/langcolors/pkg/report"
)

const (
	orderByName    = "name"
	orderByNearest = "nearest"
)

// listCommand prints one ordering as a terminal table with color swatches.
func (c *CLI) listCommand() *cobra.Command {
	var (
		flags sourceFlags
		by    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List language colors in the terminal",
		Example: `  langcolors list
  langcolors list --by name -t programming`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if by != orderByName && by != orderByNearest {
				return fmt.Errorf("invalid --by: %q (must be %q or %q)", by, orderByName, orderByNearest)
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

			entries, withSteps := result.Set.Entries(), false
			if by == orderByNearest {
				entries, withSteps = []chain.Entry(result.Chain), true
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.EntryTable(entries, withSteps).Render())
			printStats(result.Stats.Colored, result.Stats.ChainLength, result.Stats.Skipped, result.CacheInfo.LoadHit)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&by, "by", orderByNearest, "ordering: nearest (default) or name")

	return cmd
}
