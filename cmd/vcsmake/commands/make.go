package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/vcsmake/internal/app"
)

func (c *CLI) newMakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make",
		Short: "Inspect and run make build steps",
	}
	cmd.PersistentFlags().StringP("step", "s", "", "Id of the build step (default: the first step)")

	cmd.AddCommand(c.newMakeShowCmd())
	cmd.AddCommand(c.newMakeSummaryCmd())
	cmd.AddCommand(c.newMakeTargetCmd())
	cmd.AddCommand(c.newMakeCommandCmd())
	cmd.AddCommand(c.newMakeArgsCmd())
	cmd.AddCommand(c.newMakeCleanCmd())
	cmd.AddCommand(c.newMakeRunCmd())
	cmd.AddCommand(c.newMakeWatchCmd())
	cmd.AddCommand(c.newMakeSelectCmd())

	return cmd
}

// stepFlags returns the working directory and the --step flag.
func stepFlags(cmd *cobra.Command) (cwd, id string, err error) {
	cwd, err = workingDir(cmd)
	if err != nil {
		return "", "", err
	}
	id, err = cmd.Flags().GetString("step")
	return cwd, id, err
}

func (c *CLI) newMakeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the settings and summary of a build step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, id, err := stepFlags(cmd)
			if err != nil {
				return err
			}
			step, err := c.app.OpenStep(cwd, id)
			if err != nil {
				return err
			}

			s := step.Step()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Step:      %s (%s)\n", s.DisplayName(), s.ID())
			_, _ = fmt.Fprintf(out, "Available: %s\n", strings.Join(s.AvailableTargets(), " "))
			_, _ = fmt.Fprintf(out, "Targets:   %s\n", strings.Join(s.BuildTargets(), " "))
			_, _ = fmt.Fprintf(out, "Arguments: %s\n", s.UserArguments())
			_, _ = fmt.Fprintf(out, "%-10s %s\n", step.MakeLabel(), s.MakeCommand())
			_, _ = fmt.Fprintf(out, "Clean:     %t\n", s.IsClean())
			_, _ = fmt.Fprintf(out, "Summary:   %s\n", step.SummaryText())
			return nil
		},
	}
}

func (c *CLI) newMakeSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the one-line summary of a build step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, id, err := stepFlags(cmd)
			if err != nil {
				return err
			}
			step, err := c.app.OpenStep(cwd, id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), step.SummaryText())
			return nil
		},
	}
}

// update applies change to the step named by the flags and prints the new summary.
func (c *CLI) update(cmd *cobra.Command, change app.StepChange) error {
	cwd, id, err := stepFlags(cmd)
	if err != nil {
		return err
	}
	summary, err := c.app.UpdateStep(cwd, id, change)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), summary.Text)
	return nil
}

func (c *CLI) newMakeTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Select the targets a build step builds",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <target>...",
		Short: "Add targets to the selection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.update(cmd, app.StepChange{Enable: args})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <target>...",
		Short: "Remove targets from the selection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.update(cmd, app.StepChange{Disable: args})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set [target...]",
		Short: "Replace the selection, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if args == nil {
				args = []string{}
			}
			return c.update(cmd, app.StepChange{Targets: args})
		},
	})

	return cmd
}

func (c *CLI) newMakeCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command [command]",
		Short: "Override the make command, or restore the toolchain default without an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := ""
			if len(args) == 1 {
				command = args[0]
			}
			return c.update(cmd, app.StepChange{Command: &command})
		},
	}
}

func (c *CLI) newMakeArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args [arguments]",
		Short: "Set the additional make arguments, or clear them without an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := ""
			if len(args) == 1 {
				arguments = args[0]
			}
			return c.update(cmd, app.StepChange{Arguments: &arguments})
		},
	}
}

func (c *CLI) newMakeCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <true|false>",
		Short: "Mark whether the build step belongs to a clean build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clean, err := strconv.ParseBool(args[0])
			if err != nil {
				return err
			}
			return c.update(cmd, app.StepChange{Clean: &clean})
		},
	}
}

func (c *CLI) newMakeRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the make command of a build step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, id, err := stepFlags(cmd)
			if err != nil {
				return err
			}
			return c.app.RunStep(cmd.Context(), cwd, id, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func (c *CLI) newMakeWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the summary again whenever the project or the step settings change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, id, err := stepFlags(cmd)
			if err != nil {
				return err
			}
			return c.app.WatchStep(cmd.Context(), cwd, id, cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newMakeSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Pick the targets of a build step in a checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, id, err := stepFlags(cmd)
			if err != nil {
				return err
			}
			outputMode, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			summary, err := c.app.SelectTargets(cmd.Context(), cwd, id, outputMode)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), summary.Text)
			return nil
		},
	}
}
