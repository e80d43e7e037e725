// Package cli provides the command-line interface for the salesurl converter.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/salesurl/internal/app"
	"github.com/law-makers/salesurl/internal/config"
	"github.com/law-makers/salesurl/internal/ui"
)

// ExitInterrupted is returned when ctx is canceled before output.json is written.
const ExitInterrupted = 130

// Execute runs the root command against the process streams and exits
// non-zero on any failure. This is called by main.main().
func Execute(ctx context.Context) {
	os.Exit(Run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the converter with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, ui.Error("✗ interrupted, output not written"))
			return ExitInterrupted
		}
		fmt.Fprintln(stderr, ui.Error("✗ "+err.Error()))
		return 1
	}
	return 0
}

// NewRootCmd builds the salesurl command. The document goes to stdout, logs and
// failures to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var application *app.Application

	cmd := &cobra.Command{
		Use:   "salesurl",
		Short: "Turn a sales search export into a profiles request body",
		Long: `Reads input.json (an array of search results), keeps only the sales_url
of every record and writes the result to output.json, 2-space indented.
The same document is printed to stdout.

The run is all-or-nothing: a record without sales_url, malformed JSON or an
unreadable file aborts before output.json is written.`,
		Example: `  # Convert input.json in the current directory
  salesurl

  # Show debug logs on stderr
  salesurl -v`,
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}

			application, err = app.New(cmd.Context(), cfg, app.Options{Stdout: stdout, Stderr: stderr})
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// cobra skips post-run hooks on error, so close here
			defer func() { _ = application.Close(cmd.Context()) }()

			if err := application.Run(cmd.Context()); err != nil {
				application.Logger.Debug().Err(err).Msg("Conversion failed")
				return err
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.RegisterFlags(cmd)
	cmd.Flags().BoolP("help", "h", false, "Help for salesurl")
	cmd.Flags().Bool("version", false, "Version for salesurl")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpFunc(customHelpFunc)

	return cmd
}

// customHelpFunc provides a colorized help output
func customHelpFunc(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "\n%s%s%s\n", ui.ColorBold+ui.ColorCyan, strings.ToUpper(cmd.Name()), ui.ColorReset)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s\n", cmd.Short)
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Fprintf(w, "\n%s\n", cmd.Long)
	}

	fmt.Fprintf(w, "\n%sUsage%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
	fmt.Fprintf(w, "  %s%s%s\n", ui.ColorCyan, cmd.UseLine(), ui.ColorReset)

	if cmd.HasExample() {
		fmt.Fprintf(w, "\n%sExamples%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
		for _, example := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(example)
			switch {
			case trimmed == "":
				continue
			case strings.HasPrefix(trimmed, "#"):
				fmt.Fprintf(w, "  %s%s%s\n", ui.ColorDim, trimmed, ui.ColorReset)
			default:
				fmt.Fprintf(w, "  %s$ %s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			}
		}
	}

	if cmd.HasAvailableFlags() {
		fmt.Fprintf(w, "\n%sFlags%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
		printFlagsTo(w, cmd.Flags().FlagUsages())
	}
	fmt.Fprintln(w)
}

// printFlagsTo prints flag usages with the flag names in green and the descriptions dimmed
func printFlagsTo(w io.Writer, flagUsages string) {
	for _, line := range strings.Split(flagUsages, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		parts := strings.SplitN(trimmed, "  ", 2)
		if len(parts) != 2 {
			fmt.Fprintf(w, "  %s%s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			continue
		}
		fmt.Fprintf(w, "  %s%-28s%s  %s%s%s\n",
			ui.ColorGreen, strings.TrimSpace(parts[0]), ui.ColorReset,
			ui.ColorDim, strings.TrimSpace(parts[1]), ui.ColorReset)
	}
}
