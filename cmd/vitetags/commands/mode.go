package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Report whether the Vite dev server is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.vite(cmd)
			if err != nil {
				return err
			}

			info := v.Mode()
			if !info.Dev {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "prod")
				return err
			}

			c.logger.Info(fmt.Sprintf("dev server active at %s (marker %s)", info.Origin, info.MarkerPath))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "dev %s\n", info.Origin)
			return err
		},
	}
}
