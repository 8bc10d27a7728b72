package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags <entries...>",
		Short: "Print the script, stylesheet and preload tags for entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.vite(cmd)
			if err != nil {
				return err
			}
			tags, err := v.Tags(cmd.Context(), args...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tags)
			return err
		},
	}
}
