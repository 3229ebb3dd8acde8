package bazaar

import (
	"context"
	"io"
	"os"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the command run when no binary is configured.
const DefaultBinary = "bzr"

// Client implements ports.VersionControl by running the bzr command line tool.
type Client struct {
	executor ports.Executor
	fsys     ports.FileSystem
	logger   ports.Logger
	settings domain.VCSSettings
}

// NewClient creates a new Client.
func NewClient(executor ports.Executor, fsys ports.FileSystem, logger ports.Logger) *Client {
	return &Client{
		executor: executor,
		fsys:     fsys,
		logger:   logger,
		settings: domain.VCSSettings{Binary: DefaultBinary},
	}
}

// Configure replaces the client settings.
func (c *Client) Configure(settings domain.VCSSettings) {
	if settings.Binary == "" {
		settings.Binary = DefaultBinary
	}
	c.settings = settings
}

// TopLevel returns the root of the working copy containing path.
func (c *Client) TopLevel(path string) (string, error) {
	root := FindTopLevel(c.fsys, path)
	if root == "" {
		return "", zerr.With(domain.ErrNotWorkingCopy, "path", path)
	}
	return root, nil
}

// BranchInfo reads the binding of the working copy at root.
func (c *Client) BranchInfo(root string) domain.BranchInfo {
	return ReadBranchInfo(c.fsys, root)
}

// Status returns the changed files of the working copy at dir, optionally limited to file.
func (c *Client) Status(ctx context.Context, dir, file string) ([]domain.StatusEntry, error) {
	verb, _ := Verb(domain.StatusCommand)
	inv := c.invocation(dir, append([]string{verb}, StatusArgs(file)...))

	out, err := c.executor.Output(ctx, inv)
	if err != nil {
		return nil, zerr.With(err, "dir", dir)
	}
	return ParseStatus(string(out)), nil
}

// SetUserID records the configured name and email as the committer identity.
func (c *Client) SetUserID(ctx context.Context, dir string) error {
	inv := c.invocation(dir, WhoamiArgs(c.settings.UserName, c.settings.Email))
	if _, err := c.executor.Output(ctx, inv); err != nil {
		return zerr.With(err, "user", c.settings.UserName)
	}
	return nil
}

// Run executes bzr with args in dir and streams its output to out.
// Error output goes to out as well.
func (c *Client) Run(ctx context.Context, dir string, args []string, out io.Writer) error {
	if len(args) == 0 {
		return domain.ErrEmptyCommand
	}
	c.logger.Info(c.settings.Binary + " " + args[0])

	if err := c.executor.Execute(ctx, c.invocation(dir, args), out, out); err != nil {
		return zerr.With(err, "dir", dir)
	}
	return nil
}

// WriteMessageFile stores a commit message in a temporary file.
// The returned function removes the file.
func (c *Client) WriteMessageFile(message string) (string, func(), error) {
	f, err := os.CreateTemp("", "vcsmake-commit-*.txt")
	if err != nil {
		return "", nil, zerr.Wrap(err, domain.ErrMessageFileFailed.Error())
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(message); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, zerr.Wrap(err, domain.ErrMessageFileFailed.Error())
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, zerr.Wrap(err, domain.ErrMessageFileFailed.Error())
	}
	return path, cleanup, nil
}

func (c *Client) invocation(dir string, args []string) *domain.Invocation {
	env := domain.SystemEnvironment()
	domain.SetupEnglishOutput(&env)

	return &domain.Invocation{
		Name:        c.settings.Binary,
		Command:     append([]string{c.settings.Binary}, args...),
		WorkingDir:  dir,
		Environment: env.Entries(),
	}
}
