package bazaar

import "strings"

// argument is implemented by every option and renders its command line tokens.
type argument interface {
	args() []string
}

// CloneOption configures CloneArgs.
type CloneOption interface {
	argument
	cloneOption()
}

// PullOption configures PullArgs.
type PullOption interface {
	argument
	pullOption()
}

// PushOption configures PushArgs.
type PushOption interface {
	argument
	pushOption()
}

// CommitOption configures CommitArgs.
type CommitOption interface {
	argument
	commitOption()
}

// DiffOption configures DiffArgs.
type DiffOption interface {
	argument
	diffOption()
}

// LogOption configures LogArgs.
type LogOption interface {
	argument
	logOption()
}

// sharedPullPush marks the options pull and push render before their own.
type sharedPullPush interface {
	sharedPullPush()
}

func boolFlag(on bool, flag string) []string {
	if !on {
		return nil
	}
	return []string{flag}
}

// UseExistingDirOpt lets clone and push target a directory that already exists.
type UseExistingDirOpt bool

func (o UseExistingDirOpt) args() []string { return boolFlag(bool(o), "--use-existing-dir") }
func (UseExistingDirOpt) cloneOption()     {}
func (UseExistingDirOpt) pushOption()      {}

// StackedOpt creates a stacked branch referring to the source for history.
type StackedOpt bool

func (o StackedOpt) args() []string { return boolFlag(bool(o), "--stacked") }
func (StackedOpt) cloneOption()     {}

// StandaloneOpt creates a branch that does not use a shared repository.
type StandaloneOpt bool

func (o StandaloneOpt) args() []string { return boolFlag(bool(o), "--standalone") }
func (StandaloneOpt) cloneOption()     {}

// BindOpt binds the new branch to the source.
type BindOpt bool

func (o BindOpt) args() []string { return boolFlag(bool(o), "--bind") }
func (BindOpt) cloneOption()     {}

// SwitchOpt switches the checkout in the current directory to the new branch.
type SwitchOpt bool

func (o SwitchOpt) args() []string { return boolFlag(bool(o), "--switch") }
func (SwitchOpt) cloneOption()     {}

// HardLinkOpt hard-links working tree files where possible.
type HardLinkOpt bool

func (o HardLinkOpt) args() []string { return boolFlag(bool(o), "--hardlink") }
func (HardLinkOpt) cloneOption()     {}

// NoTreeOpt creates a branch without a working tree.
type NoTreeOpt bool

func (o NoTreeOpt) args() []string { return boolFlag(bool(o), "--no-tree") }
func (NoTreeOpt) cloneOption()     {}

// RevisionOpt selects a revision. Empty means the tip.
type RevisionOpt string

func (o RevisionOpt) args() []string {
	if o == "" {
		return nil
	}
	return []string{"-r", string(o)}
}
func (RevisionOpt) cloneOption()    {}
func (RevisionOpt) pullOption()     {}
func (RevisionOpt) pushOption()     {}
func (RevisionOpt) sharedPullPush() {}

// RememberOpt stores the location as the default for later pulls or pushes.
type RememberOpt bool

func (o RememberOpt) args() []string { return boolFlag(bool(o), "--remember") }
func (RememberOpt) pullOption()      {}
func (RememberOpt) pushOption()      {}
func (RememberOpt) sharedPullPush()  {}

// OverwriteOpt discards diverged history on the receiving side.
type OverwriteOpt bool

func (o OverwriteOpt) args() []string { return boolFlag(bool(o), "--overwrite") }
func (OverwriteOpt) pullOption()      {}
func (OverwriteOpt) pushOption()      {}
func (OverwriteOpt) sharedPullPush()  {}

// LocalOpt restricts pull or commit to the local branch of a bound checkout.
type LocalOpt bool

func (o LocalOpt) args() []string { return boolFlag(bool(o), "--local") }
func (LocalOpt) pullOption()      {}
func (LocalOpt) commitOption()    {}

// CreatePrefixOpt creates missing leading directories of the push location.
type CreatePrefixOpt bool

func (o CreatePrefixOpt) args() []string { return boolFlag(bool(o), "--create-prefix") }
func (CreatePrefixOpt) pushOption()      {}

// AuthorOpt records a different author than the committer.
type AuthorOpt string

func (o AuthorOpt) args() []string {
	if o == "" {
		return nil
	}
	return []string{"--author=" + string(o)}
}
func (AuthorOpt) commitOption() {}

// FixesOpt marks bugs fixed by the commit. Empty references are skipped.
type FixesOpt []string

func (o FixesOpt) args() []string {
	out := make([]string, 0, 2*len(o))
	for _, ref := range o {
		if ref == "" {
			continue
		}
		out = append(out, "--fixes", ref)
	}
	return out
}
func (FixesOpt) commitOption() {}

// ArgOpt passes one pre-formatted token through to diff or log.
type ArgOpt string

func (o ArgOpt) args() []string {
	if o == "" {
		return nil
	}
	return []string{string(o)}
}
func (ArgOpt) diffOption() {}
func (ArgOpt) logOption()  {}

// ArgsOpt passes several pre-formatted tokens through to diff or log, in order.
type ArgsOpt []string

func (o ArgsOpt) args() []string { return []string(o) }
func (ArgsOpt) diffOption()      {}
func (ArgsOpt) logOption()       {}

// DiffFormatOpt folds whitespace toggles into a single --diff-options token.
type DiffFormatOpt struct {
	IgnoreWhitespace bool
	IgnoreBlankLines bool
}

func (o DiffFormatOpt) args() []string {
	var flags []string
	if o.IgnoreWhitespace {
		flags = append(flags, "-w")
	}
	if o.IgnoreBlankLines {
		flags = append(flags, "-B")
	}
	if len(flags) == 0 {
		return nil
	}
	return []string{"--diff-options=" + strings.Join(flags, " ")}
}
func (DiffFormatOpt) diffOption() {}
