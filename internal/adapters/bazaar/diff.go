package bazaar

import "slices"

// DiffParameters remembers a diff so it can be run again with other whitespace settings.
type DiffParameters struct {
	WorkingDir string
	Files      []string
	Extra      []DiffOption
}

// WithFormat returns a copy of p that also applies format.
func (p DiffParameters) WithFormat(format DiffFormatOpt) DiffParameters {
	out := DiffParameters{
		WorkingDir: p.WorkingDir,
		Files:      slices.Clone(p.Files),
		Extra:      slices.Clone(p.Extra),
	}
	if len(format.args()) > 0 {
		out.Extra = append(out.Extra, format)
	}
	return out
}

// CommandLine returns the full bzr command line, subcommand first.
func (p DiffParameters) CommandLine() []string {
	return append([]string{"diff"}, DiffArgs(p.Files, p.Extra...)...)
}
