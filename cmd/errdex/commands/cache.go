package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.errdex.dev/errdex/internal/core/domain"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the snapshot cache",
	}

	cmd.AddCommand(c.newCacheStatusCmd())
	cmd.AddCommand(c.newCacheCleanCmd())

	return cmd
}

func (c *CLI) newCacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the snapshot state and age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.app.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Cache:    %s\n", st.CacheDir)
			_, _ = fmt.Fprintf(out, "State:    %s\n", st.State)
			if st.State != domain.CacheMissing {
				_, _ = fmt.Fprintf(out, "Written:  %s (%s ago)\n", st.WrittenAt.Format(time.RFC3339), st.Age.Round(time.Second))
				_, _ = fmt.Fprintf(out, "Records:  %d\n", st.Count)
				_, _ = fmt.Fprintf(out, "Digest:   %s\n", st.Digest)
				_, _ = fmt.Fprintf(out, "Run:      %s\n", st.RunID)
			}
			_, _ = fmt.Fprintf(out, "Updating: %t\n", st.Updating)

			return nil
		},
	}
}

func (c *CLI) newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the cached snapshot",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Clean()
		},
	}
}
