package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/langcolors/pkg/pipeline"
	"github.com/matzehuels/langcolors/pkg/report"
)

// renderCommand creates the render command: fetch → chain → render.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      sourceFlags
		formatsStr string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the language color report",
		Long: `Render downloads languages.yml, builds the nearest-color chain and writes
the report. With a single format and no --output the artifact goes to stdout.

Formats: html (default), json, dot, svg, png, text.`,
		Example: `  langcolors render > colors.html
  langcolors render -f html,json,svg -o out/colors
  langcolors render --file languages.yml -t programming -f text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, c.cfg)
			if cmd.Flags().Changed("format") {
				opts.Formats = splitList(formatsStr)
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if output == "" && len(opts.Formats) > 1 {
				return fmt.Errorf("--output is required when rendering %d formats", len(opts.Formats))
			}
			return c.runRender(cmd, opts, flags.noCache, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html, json, dot, svg, png, text (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple); stdout if empty")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, noCache bool, output string) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Loading "+opts.SourceLabel())
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	for _, s := range result.Skipped {
		printWarning("Skipped %s: malformed color %q", s.Language, s.Color)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(output, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.Formats)))
	printSuccess("Rendered %s", StyleTitle.Render(result.Report.Title))
	printStats(result.Stats.Colored, result.Stats.ChainLength, result.Stats.Skipped,
		result.CacheInfo.LoadHit && result.CacheInfo.RenderHit)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	if slices.Contains(opts.Formats, string(report.FormatHTML)) {
		printNextStep("Serve it locally", "langcolors serve")
	}
	return nil
}

// outputPaths maps each format to its file. A single format writes to
// output as given; several formats share output as a base path with any
// known format extension stripped.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + report.Format(f).Ext()
	}
	return paths
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	name := strings.TrimPrefix(ext, ".")
	if pipeline.ValidFormats[name] || name == "txt" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
