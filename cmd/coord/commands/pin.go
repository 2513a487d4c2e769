package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin",
		Short: "Resolve the declared artifacts and pin the result to the lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, _ := cmd.Flags().GetString("config")
			return c.app.Pin(cmd.Context(), manifestPath)
		},
	}
}
