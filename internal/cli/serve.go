package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/langcolors/internal/server"
	"github.com/matzehuels/langcolors/pkg/config"
)

// serveCommand creates the serve command, which keeps the chain in memory
// and serves every report format over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   sourceFlags
		addr    string
		refresh time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report over HTTP",
		Example: `  langcolors serve
  langcolors serve --addr 127.0.0.1:9000 --refresh-every 6h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := flags.options(cmd, c.cfg)
			if err := opts.ValidateForLoad(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}
			if addr == "" {
				addr = config.DefaultAddr
			}
			if !cmd.Flags().Changed("refresh-every") {
				refresh = c.cfg.Server.Refresh.Duration
			}

			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, opts, logger)
			spinner := newSpinnerWithContext(ctx, "Loading "+opts.SourceLabel())
			spinner.Start()
			result, err := srv.Refresh(ctx, opts.Refresh)
			spinner.Stop()
			if err != nil {
				return err
			}

			printSuccess("Serving %d languages", result.Stats.Colored)
			printDetail("Listening on %s", addr)
			printInfo("Open %s", StyleLink.Render(displayURL(addr)))
			if refresh > 0 {
				printDetail("Refreshing every %s", refresh)
			}
			return srv.Run(ctx, addr, refresh)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().DurationVar(&refresh, "refresh-every", 0, "reload the catalog periodically (0 disables)")

	return cmd
}

// displayURL turns a listen address into a browsable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
