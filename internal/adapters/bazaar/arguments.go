// Package bazaar turns version control operations into bzr command lines and
// parses the plain text bzr prints.
package bazaar

import "fmt"

func appendOptions[O argument](args []string, opts []O) []string {
	for _, o := range opts {
		args = append(args, o.args()...)
	}
	return args
}

func appendRevision(args []string, rev string) []string {
	return append(args, RevisionOpt(rev).args()...)
}

// CloneArgs returns the arguments of "bzr branch" for src into dst.
func CloneArgs(src, dst string, opts ...CloneOption) []string {
	args := appendOptions([]string{}, opts)
	args = append(args, src)
	if dst != "" {
		args = append(args, dst)
	}
	return args
}

// splitShared separates the options pull and push have in common from the rest.
func splitShared[O argument](opts []O) (shared, own []O) {
	for _, o := range opts {
		if _, ok := any(o).(sharedPullPush); ok {
			shared = append(shared, o)
		} else {
			own = append(own, o)
		}
	}
	return shared, own
}

// PullArgs returns the arguments of "bzr pull" from src.
func PullArgs(src string, opts ...PullOption) []string {
	shared, own := splitShared(opts)
	args := appendOptions([]string{}, shared)
	args = appendOptions(args, own)
	if src != "" {
		args = append(args, src)
	}
	return args
}

// PushArgs returns the arguments of "bzr push" to dst.
func PushArgs(dst string, opts ...PushOption) []string {
	shared, own := splitShared(opts)
	args := appendOptions([]string{}, shared)
	args = appendOptions(args, own)
	if dst != "" {
		args = append(args, dst)
	}
	return args
}

// CommitArgs returns the arguments of "bzr commit" reading the message from messageFile.
func CommitArgs(files []string, messageFile string, opts ...CommitOption) []string {
	args := appendOptions([]string{}, opts)
	args = append(args, "-F", messageFile)
	return append(args, files...)
}

// ImportArgs returns the arguments of "bzr add".
func ImportArgs(files []string) []string {
	return append([]string{}, files...)
}

// UpdateArgs returns the arguments of "bzr update".
func UpdateArgs(rev string) []string {
	return appendRevision([]string{}, rev)
}

// RevertArgs returns the arguments of "bzr revert" for one file.
func RevertArgs(file, rev string) []string {
	args := appendRevision([]string{}, rev)
	if file != "" {
		args = append(args, file)
	}
	return args
}

// RevertAllArgs returns the arguments of "bzr revert" for the whole tree.
func RevertAllArgs(rev string) []string {
	return appendRevision([]string{}, rev)
}

// AnnotateArgs returns the arguments of "bzr annotate". The line is not
// understood by bzr and only matters to whoever displays the result.
func AnnotateArgs(file, rev string, _ int) []string {
	args := appendRevision([]string{"--long"}, rev)
	return append(args, file)
}

// DiffArgs returns the arguments of "bzr diff".
func DiffArgs(files []string, opts ...DiffOption) []string {
	args := appendOptions([]string{}, opts)
	return append(args, files...)
}

// LogArgs returns the arguments of "bzr log".
func LogArgs(files []string, opts ...LogOption) []string {
	args := appendOptions([]string{}, opts)
	return append(args, files...)
}

// StatusArgs returns the arguments of "bzr status", optionally limited to file.
func StatusArgs(file string) []string {
	args := []string{"--short"}
	if file != "" {
		args = append(args, file)
	}
	return args
}

// ViewArgs returns the full command line showing the change made in rev.
func ViewArgs(rev string) []string {
	return []string{"log", "-p", "-v", "-r", rev}
}

// WhoamiArgs returns the full command line setting the committer identity.
func WhoamiArgs(name, email string) []string {
	return []string{"whoami", fmt.Sprintf("%s <%s>", name, email)}
}
