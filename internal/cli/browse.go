package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand opens an interactive terminal browser over both orderings.
func (c *CLI) browseCommand() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the color chain interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(ctx, "Loading catalog")
			spinner.Start()
			result, err := runner.Prepare(ctx, flags.options(cmd, c.cfg))
			spinner.Stop()
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewChainModel(result.Set, result.Chain), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
