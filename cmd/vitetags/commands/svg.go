package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg <asset>",
		Short: "Print sanitized inline markup for an SVG asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawAttrs, _ := cmd.Flags().GetStringArray("attr")
			strict, _ := cmd.Flags().GetBool("strict")

			attrs := make(domain.Attributes, 0, len(rawAttrs))
			for _, raw := range rawAttrs {
				attr, err := domain.ParseAttribute(raw)
				if err != nil {
					return err
				}
				attrs = append(attrs, attr)
			}

			v, err := c.vite(cmd)
			if err != nil {
				return err
			}

			if !strict {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v.InlineSVG(cmd.Context(), args[0], attrs))
				return err
			}

			res := v.ResolveSVG(cmd.Context(), args[0], attrs)
			if !res.Inlined() {
				if res.Err != nil {
					return zerr.With(res.Err, "reason", string(res.Reason))
				}
				return zerr.With(zerr.With(domain.Fail(domain.ErrSVGNotFound, nil), "asset", args[0]), "reason", string(res.Reason))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Markup)
			return err
		},
	}
	cmd.Flags().StringArrayP("attr", "a", nil, "Attribute to merge into the root element, as name=value")
	cmd.Flags().Bool("strict", false, "Fail instead of printing an <img> fallback")
	return cmd
}
