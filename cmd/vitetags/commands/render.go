package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// stdinName is the template argument that reads from standard input.
const stdinName = "-"

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <template|->",
		Short: "Render a Go template with the vite helper functions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath, _ := cmd.Flags().GetString("data")

			name, text, err := readTemplate(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			data, err := readData(dataPath)
			if err != nil {
				return err
			}

			v, err := c.vite(cmd)
			if err != nil {
				return err
			}
			return v.RenderTemplate(cmd.Context(), name, text, cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringP("data", "d", "", "YAML or JSON file passed to the template as its data")
	return cmd
}

func readTemplate(stdin io.Reader, arg string) (name, text string, err error) {
	if arg == stdinName {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", zerr.With(domain.Fail(domain.ErrTemplateParseFailed, err), "template", "stdin")
		}
		return "stdin", string(b), nil
	}

	b, err := os.ReadFile(arg) //nolint:gosec // Path comes from the command line.
	if err != nil {
		return "", "", zerr.With(domain.Fail(domain.ErrTemplateParseFailed, err), "template", arg)
	}
	return filepath.Base(arg), string(b), nil
}

func readData(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path) //nolint:gosec // Path comes from the command line.
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrTemplateExecFailed, err), "data", path)
	}

	var data map[string]any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrTemplateExecFailed, err), "data", path)
	}
	return data, nil
}
