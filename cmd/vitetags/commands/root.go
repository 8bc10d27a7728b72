// Package commands implements the CLI commands for vitetags.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vitetags/internal/adapters/telemetry"
	"go.trai.ch/vitetags/internal/app"
	"go.trai.ch/vitetags/internal/build"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
)

// Application is the part of the app layer the commands drive.
type Application interface {
	LoadConfig(path string, explicit bool, o app.Overrides) (domain.Config, error)
	Vite(cfg domain.Config) *app.Vite
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for vitetags.
type CLI struct {
	app      Application
	logger   ports.Logger
	rootCmd  *cobra.Command
	shutdown []func(context.Context) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vitetags",
		Short:         "Resolve Vite build assets into HTML tags",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("config", domain.ConfigFileName, "Path to the config file")
	flags.String("root", "", "Site root that source and build paths resolve from")
	flags.String("base-url", "", "Public URL prefix the root is served under")
	flags.String("build-dir", "", "Build output directory relative to the root")
	flags.String("manifest", "", "Manifest file name inside the build directory")
	flags.Bool("lenient", false, "Treat an unparsable manifest as empty")
	flags.Bool("json", false, "Write logs as JSON")
	flags.Bool("trace", false, "Log a line for every traced operation")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newURLCmd())
	rootCmd.AddCommand(c.newTagsCmd())
	rootCmd.AddCommand(c.newSVGCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newModeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	for _, fn := range c.shutdown {
		err = errors.Join(err, fn(ctx))
	}
	c.shutdown = nil
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream read by "render -". Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// vite loads the configuration named by the global flags and returns a
// facade for it. It also applies the logging and tracing flags.
func (c *CLI) vite(cmd *cobra.Command) (*app.Vite, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	explicit := flags.Changed("config")

	var o app.Overrides
	if flags.Changed("root") {
		o.Root = stringFlag(cmd, "root")
	}
	if flags.Changed("base-url") {
		o.BaseURL = stringFlag(cmd, "base-url")
	}
	if flags.Changed("build-dir") {
		o.BuildDirectory = stringFlag(cmd, "build-dir")
	}
	if flags.Changed("manifest") {
		o.ManifestFilename = stringFlag(cmd, "manifest")
	}
	if flags.Changed("lenient") {
		lenient, _ := flags.GetBool("lenient")
		o.Lenient = &lenient
	}

	cfg, err := c.app.LoadConfig(path, explicit, o)
	if err != nil {
		return nil, err
	}

	jsonLogs, _ := flags.GetBool("json")
	if s, ok := c.logger.(jsonSwitcher); ok && (jsonLogs || cfg.LogFormat == domain.LogFormatJSON) {
		s.SetJSON(true)
	}

	if trace, _ := flags.GetBool("trace"); trace {
		c.shutdown = append(c.shutdown, telemetry.Install(c.logger))
	}

	return c.app.Vite(cfg), nil
}

func stringFlag(cmd *cobra.Command, name string) *string {
	v, _ := cmd.Flags().GetString(name)
	return &v
}
