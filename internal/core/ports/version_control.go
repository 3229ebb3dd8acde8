package ports

import (
	"context"
	"io"

	"go.trai.ch/vcsmake/internal/core/domain"
)

// VersionControl defines the interface for working with a version control working copy.
//
//go:generate mockgen -source=version_control.go -destination=mocks/mock_version_control.go -package=mocks
type VersionControl interface {
	// Configure replaces the client settings such as the binary and the user identity.
	Configure(settings domain.VCSSettings)
	// TopLevel returns the root of the working copy containing path.
	TopLevel(path string) (string, error)
	// BranchInfo reads whether the working copy at root is bound to another branch.
	BranchInfo(root string) domain.BranchInfo
	// Status returns the changed files in dir, optionally limited to file.
	Status(ctx context.Context, dir, file string) ([]domain.StatusEntry, error)
	// SetUserID records the configured identity as the committer.
	SetUserID(ctx context.Context, dir string) error
	// Run executes the client with args in dir, streaming output to out.
	Run(ctx context.Context, dir string, args []string, out io.Writer) error
	// WriteMessageFile stores a commit message and returns its path and a cleanup function.
	WriteMessageFile(message string) (string, func(), error)
}
