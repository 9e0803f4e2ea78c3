// Package commands implements the CLI commands for plat.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/plat/internal/app"
	"go.trai.ch/plat/internal/build"
	"go.trai.ch/plat/internal/core/domain"
)

// CLI represents the command line interface for plat.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	onJSONLogs func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Detect(ctx context.Context, opts app.RunOptions) ([]domain.DetectionResult, error)
	Plan(ctx context.Context, opts app.RunOptions) ([]domain.PlatformPlan, error)
	Snippet(ctx context.Context, name string, opts app.RunOptions) (domain.InstallDecision, error)
	Platforms(ctx context.Context) ([]app.PlatformInfo, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "plat",
		Short:         "Detect language platforms and the runtime versions a build needs",
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

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write log records as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if c.onJSONLogs != nil {
			c.onJSONLogs(jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newDetectCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newSnippetCmd())
	rootCmd.AddCommand(c.newPlatformsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// OnJSONLogs registers fn to be called with the value of --json-logs before a command runs.
func (c *CLI) OnJSONLogs(fn func(bool)) {
	c.onJSONLogs = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
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
