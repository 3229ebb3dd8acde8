package bazaar

import (
	"slices"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Request collects the inputs of one operation as given on a command line.
type Request struct {
	Operation   string
	Source      string
	Destination string
	Files       []string
	Revision    string
	MessageFile string
	Author      string
	Fixes       []string
	Line        int
	Extra       []string
	UserName    string
	Email       string

	UseExistingDir   bool
	Stacked          bool
	Standalone       bool
	Bind             bool
	Switch           bool
	HardLink         bool
	NoTree           bool
	Remember         bool
	Overwrite        bool
	Local            bool
	CreatePrefix     bool
	IgnoreWhitespace bool
	IgnoreBlankLines bool
}

// Operations lists the operation names Arguments understands.
var Operations = []string{
	"annotate", "clone", "commit", "diff", "import", "log", "pull", "push",
	"revert", "revert-all", "status", "update", "view", "whoami",
}

// Arguments returns the full bzr command line, subcommand first, for req.
func Arguments(req Request) ([]string, error) {
	switch req.Operation {
	case "clone":
		return withVerb(domain.CloneCommand, CloneArgs(req.Source, req.Destination,
			UseExistingDirOpt(req.UseExistingDir),
			StackedOpt(req.Stacked),
			StandaloneOpt(req.Standalone),
			BindOpt(req.Bind),
			SwitchOpt(req.Switch),
			HardLinkOpt(req.HardLink),
			NoTreeOpt(req.NoTree),
			RevisionOpt(req.Revision),
		)), nil
	case "pull":
		return withVerb(domain.PullCommand, PullArgs(req.Source,
			RememberOpt(req.Remember),
			OverwriteOpt(req.Overwrite),
			RevisionOpt(req.Revision),
			LocalOpt(req.Local),
		)), nil
	case "push":
		return withVerb(domain.PushCommand, PushArgs(req.Destination,
			RememberOpt(req.Remember),
			OverwriteOpt(req.Overwrite),
			RevisionOpt(req.Revision),
			UseExistingDirOpt(req.UseExistingDir),
			CreatePrefixOpt(req.CreatePrefix),
		)), nil
	case "commit":
		return withVerb(domain.CommitCommand, CommitArgs(req.Files, req.MessageFile,
			AuthorOpt(req.Author),
			FixesOpt(req.Fixes),
			LocalOpt(req.Local),
		)), nil
	case "import":
		return withVerb(domain.ImportCommand, ImportArgs(req.Files)), nil
	case "update":
		return withVerb(domain.UpdateCommand, UpdateArgs(req.Revision)), nil
	case "revert":
		return withVerb(domain.RevertCommand, RevertArgs(firstFile(req.Files), req.Revision)), nil
	case "revert-all":
		return withVerb(domain.RevertCommand, RevertAllArgs(req.Revision)), nil
	case "annotate":
		return withVerb(domain.AnnotateCommand, AnnotateArgs(firstFile(req.Files), req.Revision, req.Line)), nil
	case "diff":
		return withVerb(domain.DiffCommand, DiffArgs(req.Files,
			ArgsOpt(req.Extra),
			DiffFormatOpt{IgnoreWhitespace: req.IgnoreWhitespace, IgnoreBlankLines: req.IgnoreBlankLines},
		)), nil
	case "log":
		return withVerb(domain.LogCommand, LogArgs(req.Files, ArgsOpt(req.Extra))), nil
	case "status":
		return withVerb(domain.StatusCommand, StatusArgs(firstFile(req.Files))), nil
	case "view":
		return ViewArgs(req.Revision), nil
	case "whoami":
		return WhoamiArgs(req.UserName, req.Email), nil
	default:
		return nil, zerr.With(domain.ErrUnknownOperation, "operation", req.Operation)
	}
}

func withVerb(cmd domain.VCSCommand, args []string) []string {
	verb, _ := Verb(cmd)
	return slices.Insert(args, 0, verb)
}

func firstFile(files []string) string {
	if len(files) == 0 {
		return ""
	}
	return files[0]
}
