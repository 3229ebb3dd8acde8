package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/vcsmake/internal/adapters/bazaar"
	"go.trai.ch/vcsmake/internal/core/domain"
)

func (c *CLI) newBzrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bzr",
		Short: "Build and run Bazaar command lines",
	}

	cmd.AddCommand(c.newBzrArgsCmd())
	cmd.AddCommand(c.newBzrRunCmd())
	cmd.AddCommand(c.newBzrStatusCmd())
	cmd.AddCommand(c.newBzrRootCmd())
	cmd.AddCommand(c.newBzrBranchInfoCmd())
	cmd.AddCommand(c.newBzrWhoamiCmd())
	cmd.AddCommand(c.newBzrDiffCmd())
	cmd.AddCommand(c.newBzrCommitCmd())

	return cmd
}

func (c *CLI) newBzrArgsCmd() *cobra.Command {
	var req bazaar.Request
	cmd := &cobra.Command{
		Use:       "args <operation> [files...]",
		Short:     "Print the bzr command line of an operation",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: bazaar.Operations,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Operation = args[0]
			req.Files = args[1:]
			line, err := c.app.VCSArgs(req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), quoteLine(line))
			return nil
		},
	}
	bindRequestFlags(cmd, &req)
	return cmd
}

func (c *CLI) newBzrRunCmd() *cobra.Command {
	var req bazaar.Request
	cmd := &cobra.Command{
		Use:       "run <operation> [files...]",
		Short:     "Run bzr with the command line of an operation",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: bazaar.Operations,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			req.Operation = args[0]
			req.Files = args[1:]
			return c.app.RunVCS(cmd.Context(), cwd, req, cmd.OutOrStdout())
		},
	}
	bindRequestFlags(cmd, &req)
	return cmd
}

func (c *CLI) newBzrStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [file]",
		Short: "List changed files of the working copy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			entries, err := c.app.Status(cmd.Context(), cwd, file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				_, _ = fmt.Fprintf(out, "%-18s %s\n", entry.State, entry.Path)
			}
			return nil
		},
	}
}

func (c *CLI) newBzrRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the top level of the working copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			root, err := c.app.Root(cwd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

func (c *CLI) newBzrBranchInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch-info",
		Short: "Show whether the working copy is bound to another branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			info, err := c.app.BranchInfo(cwd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !info.IsBound {
				_, _ = fmt.Fprintln(out, "unbound")
				return nil
			}
			_, _ = fmt.Fprintf(out, "bound to %s\n", info.Location)
			return nil
		},
	}
}

func (c *CLI) newBzrWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Set the committer identity from " + domain.ProjectFileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Whoami(cmd.Context(), cwd)
		},
	}
}

func (c *CLI) newBzrDiffCmd() *cobra.Command {
	var (
		format bazaar.DiffFormatOpt
		extra  []string
	)
	cmd := &cobra.Command{
		Use:   "diff [files...]",
		Short: "Show the changes of the working copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			params := bazaar.DiffParameters{WorkingDir: cwd, Files: args}
			if len(extra) > 0 {
				params.Extra = []bazaar.DiffOption{bazaar.ArgsOpt(extra)}
			}
			return c.app.Diff(cmd.Context(), cwd, params, format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&format.IgnoreWhitespace, "ignore-whitespace", "w", false, "Ignore changes in whitespace")
	cmd.Flags().BoolVarP(&format.IgnoreBlankLines, "ignore-blank-lines", "B", false, "Ignore added or removed blank lines")
	cmd.Flags().StringArrayVar(&extra, "extra", nil, "Additional argument passed to bzr diff")
	return cmd
}

func (c *CLI) newBzrCommitCmd() *cobra.Command {
	var (
		req     bazaar.Request
		message string
	)
	cmd := &cobra.Command{
		Use:   "commit -m <message> [files...]",
		Short: "Commit the working copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir(cmd)
			if err != nil {
				return err
			}
			req.Files = args
			return c.app.Commit(cmd.Context(), cwd, message, req, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringVar(&req.Author, "author", "", "Author of the change")
	cmd.Flags().StringSliceVar(&req.Fixes, "fixes", nil, "Bug the change fixes, such as lp:1234")
	cmd.Flags().BoolVar(&req.Local, "local", false, "Commit locally only")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func bindRequestFlags(cmd *cobra.Command, req *bazaar.Request) {
	flags := cmd.Flags()
	flags.StringVar(&req.Source, "source", "", "Source branch location")
	flags.StringVar(&req.Destination, "dest", "", "Destination branch location")
	flags.StringVarP(&req.Revision, "revision", "r", "", "Revision")
	flags.StringVarP(&req.MessageFile, "message-file", "F", "", "File holding the commit message")
	flags.StringVar(&req.Author, "author", "", "Author of the change")
	flags.StringSliceVar(&req.Fixes, "fixes", nil, "Bug the change fixes, such as lp:1234")
	flags.IntVar(&req.Line, "line", 0, "Line to annotate")
	flags.StringArrayVar(&req.Extra, "extra", nil, "Additional argument for diff and log")
	flags.StringVar(&req.UserName, "user", "", "User name for whoami")
	flags.StringVar(&req.Email, "email", "", "Email for whoami")

	flags.BoolVar(&req.UseExistingDir, "use-existing-dir", false, "Reuse an existing directory")
	flags.BoolVar(&req.Stacked, "stacked", false, "Create a stacked branch")
	flags.BoolVar(&req.Standalone, "standalone", false, "Do not use a shared repository")
	flags.BoolVar(&req.Bind, "bind", false, "Bind the new branch to its source")
	flags.BoolVar(&req.Switch, "switch", false, "Switch the checkout to the new branch")
	flags.BoolVar(&req.HardLink, "hardlink", false, "Hard-link working tree files")
	flags.BoolVar(&req.NoTree, "no-tree", false, "Do not create a working tree")
	flags.BoolVar(&req.Remember, "remember", false, "Remember the location as the default")
	flags.BoolVar(&req.Overwrite, "overwrite", false, "Ignore diverged branches")
	flags.BoolVar(&req.Local, "local", false, "Operate on the local branch only")
	flags.BoolVar(&req.CreatePrefix, "create-prefix", false, "Create missing parent directories")
	flags.BoolVarP(&req.IgnoreWhitespace, "ignore-whitespace", "w", false, "Ignore changes in whitespace")
	flags.BoolVarP(&req.IgnoreBlankLines, "ignore-blank-lines", "B", false, "Ignore added or removed blank lines")
}

func quoteLine(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = domain.QuoteArg(arg)
	}
	return strings.Join(quoted, " ")
}
