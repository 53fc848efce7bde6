// Package commands implements the CLI commands for errdex.
package commands

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.errdex.dev/errdex/internal/app"
	"go.errdex.dev/errdex/internal/build"
	"go.errdex.dev/errdex/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for errdex.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Query(ctx context.Context, query string, opts app.QueryOptions) error
	Update(ctx context.Context) error
	Watch(ctx context.Context) error
	Status() (*app.Status, error)
	Clean() error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "errdex [query]",
		Short:         "Look up macOS error codes by number",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			switch output {
			case "", "auto", "feedback", "text":
			default:
				return zerr.With(domain.ErrInvalidOutputMode, "output", output)
			}

			return a.Query(cmd.Context(), strings.Join(args, " "), app.QueryOptions{
				OutputMode: output,
			})
		},
	}

	rootCmd.Flags().StringP("output", "o", "", "Output mode: auto, feedback, or text")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(guardNegativeQuery(args))
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

var negativeNumber = regexp.MustCompile(`^-\d`)

// guardNegativeQuery inserts the flag terminator before the first negative
// numeric argument. Codes like -50 would otherwise parse as flags. Flags
// following the negative number would turn positional, so those invocations
// are left untouched and need an explicit terminator.
func guardNegativeQuery(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}

	for i, arg := range args {
		if !negativeNumber.MatchString(arg) {
			continue
		}

		for _, rest := range args[i:] {
			if strings.HasPrefix(rest, "-") && !negativeNumber.MatchString(rest) {
				return args
			}
		}

		guarded := make([]string, 0, len(args)+1)
		guarded = append(guarded, args[:i]...)
		guarded = append(guarded, "--")
		guarded = append(guarded, args[i:]...)
		return guarded
	}

	return args
}
