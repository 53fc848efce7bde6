package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rebuild the error snapshot from the installed headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				return c.app.Watch(cmd.Context())
			}
			return c.app.Update(cmd.Context())
		},
	}

	cmd.Flags().BoolP("watch", "w", false, "Keep running and refresh when header directories change")

	return cmd
}
