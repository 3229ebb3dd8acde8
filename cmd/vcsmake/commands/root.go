// Package commands implements the CLI commands for vcsmake.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/vcsmake/internal/adapters/bazaar"
	"go.trai.ch/vcsmake/internal/app"
	"go.trai.ch/vcsmake/internal/build"
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/engine/makestep"
)

// CLI represents the command line interface for vcsmake.
type CLI struct {
	app     Application
	logs    LogFormatter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	OpenStep(cwd, id string) (*app.Step, error)
	UpdateStep(cwd, id string, change app.StepChange) (makestep.Summary, error)
	RunStep(ctx context.Context, cwd, id string, stdout, stderr io.Writer) error
	SelectTargets(ctx context.Context, cwd, id, outputMode string) (makestep.Summary, error)
	WatchStep(ctx context.Context, cwd, id string, out io.Writer) error

	VCSArgs(req bazaar.Request) ([]string, error)
	RunVCS(ctx context.Context, cwd string, req bazaar.Request, out io.Writer) error
	Root(cwd string) (string, error)
	BranchInfo(cwd string) (domain.BranchInfo, error)
	Status(ctx context.Context, cwd, file string) ([]domain.StatusEntry, error)
	Whoami(ctx context.Context, cwd string) error
	Diff(ctx context.Context, cwd string, params bazaar.DiffParameters, format bazaar.DiffFormatOpt, out io.Writer) error
	Commit(ctx context.Context, cwd, message string, req bazaar.Request, out io.Writer) error
}

// LogFormatter switches the log output between pretty and JSON lines.
type LogFormatter interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vcsmake",
		Short:         "Bazaar command lines and make build steps from the terminal",
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

	rootCmd.PersistentFlags().StringP("directory", "C", "", "Run as if started in this directory")
	rootCmd.PersistentFlags().Bool("json", false, "Write log messages as JSON lines")
	rootCmd.PersistentFlags().StringP("output", "o", "auto", "Output mode: auto, interactive, or plain")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed("json") {
			return nil
		}
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		if c.logs != nil {
			c.logs.SetJSON(asJSON)
		}
		return nil
	}

	rootCmd.AddCommand(c.newBzrCmd())
	rootCmd.AddCommand(c.newMakeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetLogFormatter lets the --json flag switch the log format of l.
// Without the flag the format l was created with is kept.
func (c *CLI) SetLogFormatter(l LogFormatter) {
	c.logs = l
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

// workingDir returns the --directory flag, or the process working directory.
func workingDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("directory")
	if err != nil {
		return "", err
	}
	if dir != "" {
		return filepath.Abs(dir)
	}
	return os.Getwd()
}
