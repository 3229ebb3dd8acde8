package bazaar

import (
	"path/filepath"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
)

// Editor kinds used to pick how command output is displayed.
const (
	AnnotationEditorKind = "Bazaar Annotation Editor"
	DiffEditorKind       = "Bazaar Diff Editor"
	FileLogEditorKind    = "Bazaar File Log Editor"
)

var verbs = map[domain.VCSCommand]string{
	domain.CloneCommand:    "branch",
	domain.PullCommand:     "pull",
	domain.PushCommand:     "push",
	domain.CommitCommand:   "commit",
	domain.ImportCommand:   "add",
	domain.UpdateCommand:   "update",
	domain.RevertCommand:   "revert",
	domain.AnnotateCommand: "annotate",
	domain.DiffCommand:     "diff",
	domain.LogCommand:      "log",
	domain.StatusCommand:   "status",
}

// Verb returns the bzr subcommand running cmd.
func Verb(cmd domain.VCSCommand) (string, bool) {
	v, ok := verbs[cmd]
	return v, ok
}

// EditorKind returns the kind of editor showing the output of cmd, or "" when
// the output needs no dedicated editor.
func EditorKind(cmd domain.VCSCommand) string {
	switch cmd {
	case domain.AnnotateCommand:
		return AnnotationEditorKind
	case domain.DiffCommand:
		return DiffEditorKind
	case domain.LogCommand:
		return FileLogEditorKind
	default:
		return ""
	}
}

// FindTopLevel returns the root of the working copy containing path, or "" when
// path is not inside one. For a file the search starts at its directory.
func FindTopLevel(fsys ports.FileSystem, path string) string {
	dir := filepath.Clean(path)
	if isDir, err := fsys.IsDir(dir); err != nil || !isDir {
		dir = filepath.Dir(dir)
	}

	for {
		if _, err := fsys.Stat(domain.BranchFormatPath(dir)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
