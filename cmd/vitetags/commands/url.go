package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <entry>",
		Short: "Print the public URL of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.vite(cmd)
			if err != nil {
				return err
			}
			url, err := v.AssetURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
}
