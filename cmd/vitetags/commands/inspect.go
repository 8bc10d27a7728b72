package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/vitetags/internal/ui/output"
	"go.trai.ch/vitetags/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List the records of the production manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.vite(cmd)
			if err != nil {
				return err
			}
			ins, err := v.Inspect(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := style.NewPalette(output.NewRenderer(w))

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n", p.Heading.Render("manifest"), ins.Path)
			fmt.Fprintf(&b, "%s %016x\n", p.Key.Render("digest"), ins.Digest)
			fmt.Fprintf(&b, "%s %d\n\n", p.Key.Render("records"), len(ins.Entries))

			for _, e := range ins.Entries {
				icon := p.Muted.Render(style.Circle)
				if e.Chunk.IsEntry {
					icon = p.Success.Render(style.Dot)
				}
				fmt.Fprintf(&b, "%s %s\n", icon, e.Key)
				fmt.Fprintf(&b, "    %s %s\n", p.Muted.Render("url"), e.URL)
				if len(e.Chunk.Imports) > 0 {
					fmt.Fprintf(&b, "    %s %s\n", p.Muted.Render("imports"), strings.Join(e.Chunk.Imports, ", "))
				}
				if len(e.Chunk.CSS) > 0 {
					fmt.Fprintf(&b, "    %s %s\n", p.Muted.Render("css"), strings.Join(e.Chunk.CSS, ", "))
				}
			}

			_, err = fmt.Fprint(w, b.String())
			return err
		},
	}
}
