package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal project state directory.
	StateDirName = ".vcsmake"

	// StepsDirName is the name of the directory holding persisted build step settings.
	StepsDirName = "steps"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "vcsmake.yaml"

	// BazaarDirName is the name of the Bazaar metadata directory inside a working copy.
	BazaarDirName = ".bzr"

	// BranchFormatFileName marks the top level of a Bazaar working copy.
	BranchFormatFileName = "branch-format"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStepsPath returns the path of the step settings directory relative to a project root.
// It joins .vcsmake and steps.
func DefaultStepsPath() string {
	return filepath.Join(StateDirName, StepsDirName)
}

// BranchConfPath returns the location of branch.conf for the given repository root.
func BranchConfPath(repositoryRoot string) string {
	return filepath.Join(repositoryRoot, BazaarDirName, "branch", "branch.conf")
}

// BranchFormatPath returns the marker file checked when looking for a repository in dir.
func BranchFormatPath(dir string) string {
	return filepath.Join(dir, BazaarDirName, BranchFormatFileName)
}
