package app

import (
	"context"
	"io"

	"go.trai.ch/vcsmake/internal/adapters/bazaar" //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// VCSArgs returns the bzr command line for req without running it.
func (a *App) VCSArgs(req bazaar.Request) ([]string, error) {
	return bazaar.Arguments(req)
}

// configureVCS applies the VCS settings of the project at or above cwd.
// Without a project file the client defaults are used.
func (a *App) configureVCS(cwd string) (domain.VCSSettings, error) {
	var settings domain.VCSSettings
	if _, ok := a.configLoader.Find(cwd); ok {
		project, err := a.loadProject(cwd)
		if err != nil {
			return settings, err
		}
		settings = project.VCS
	}
	a.vcs.Configure(settings)
	return settings, nil
}

// Root returns the top level of the working copy containing cwd.
func (a *App) Root(cwd string) (string, error) {
	return a.vcs.TopLevel(cwd)
}

// BranchInfo reports the binding of the working copy containing cwd.
func (a *App) BranchInfo(cwd string) (domain.BranchInfo, error) {
	root, err := a.vcs.TopLevel(cwd)
	if err != nil {
		return domain.BranchInfo{}, err
	}
	return a.vcs.BranchInfo(root), nil
}

// Status returns the changed files below cwd, optionally limited to file.
func (a *App) Status(ctx context.Context, cwd, file string) ([]domain.StatusEntry, error) {
	if _, err := a.configureVCS(cwd); err != nil {
		return nil, err
	}
	if _, err := a.vcs.TopLevel(cwd); err != nil {
		return nil, err
	}
	return a.vcs.Status(ctx, cwd, file)
}

// Whoami records the user name and email of the project file as the committer identity.
func (a *App) Whoami(ctx context.Context, cwd string) error {
	settings, err := a.configureVCS(cwd)
	if err != nil {
		return err
	}
	if settings.UserName == "" && settings.Email == "" {
		return zerr.With(domain.ErrNoUserID, "cwd", cwd)
	}
	if err := a.vcs.SetUserID(ctx, cwd); err != nil {
		return err
	}
	a.logger.Info("committer set to " + settings.UserName + " <" + settings.Email + ">")
	return nil
}

// Diff runs the diff described by params with format applied on top.
func (a *App) Diff(ctx context.Context, cwd string, params bazaar.DiffParameters, format bazaar.DiffFormatOpt, out io.Writer) error {
	if _, err := a.configureVCS(cwd); err != nil {
		return err
	}
	params = params.WithFormat(format)
	dir := params.WorkingDir
	if dir == "" {
		dir = cwd
	}
	return a.vcs.Run(ctx, dir, params.CommandLine(), out)
}

// Commit writes message to a temporary file and commits with it.
// The operation and message file of req are set by Commit.
func (a *App) Commit(ctx context.Context, cwd, message string, req bazaar.Request, out io.Writer) error {
	if _, err := a.configureVCS(cwd); err != nil {
		return err
	}

	path, cleanup, err := a.vcs.WriteMessageFile(message)
	if err != nil {
		return err
	}
	defer cleanup()

	req.Operation = "commit"
	req.MessageFile = path
	args, err := bazaar.Arguments(req)
	if err != nil {
		return err
	}
	return a.vcs.Run(ctx, cwd, args, out)
}

// RunVCS builds the command line for req and runs it in cwd.
func (a *App) RunVCS(ctx context.Context, cwd string, req bazaar.Request, out io.Writer) error {
	args, err := bazaar.Arguments(req)
	if err != nil {
		return err
	}
	if _, err := a.configureVCS(cwd); err != nil {
		return err
	}
	return a.vcs.Run(ctx, cwd, args, out)
}
