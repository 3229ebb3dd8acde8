package domain

// FileState is the state of a file as reported by a version control status line.
type FileState int

const (
	// StateNone means the line carried no recognised flag.
	StateNone FileState = iota
	StateVersioned
	StateUnversioned
	StateRenamed
	StateUnknown
	StateNonexistent
	StateConflict
	StatePendingMerge
	StateCreated
	StateDeleted
	StateKindChanged
	StateModified
	StateExecuteBitChanged
)

var fileStateNames = [...]string{
	StateNone:              "",
	StateVersioned:         "Versioned",
	StateUnversioned:       "Unversioned",
	StateRenamed:           "Renamed",
	StateUnknown:           "Unknown",
	StateNonexistent:       "Nonexistent",
	StateConflict:          "Conflict",
	StatePendingMerge:      "PendingMerge",
	StateCreated:           "Created",
	StateDeleted:           "Deleted",
	StateKindChanged:       "KindChanged",
	StateModified:          "Modified",
	StateExecuteBitChanged: "ExecuteBitChanged",
}

// String returns the state name, or an empty string for StateNone.
func (s FileState) String() string {
	if s < 0 || int(s) >= len(fileStateNames) {
		return ""
	}
	return fileStateNames[s]
}

// StatusEntry is one decoded line of status output.
type StatusEntry struct {
	State FileState
	Path  string
}

// IsEmpty reports whether the entry carries neither a state nor a path.
func (e StatusEntry) IsEmpty() bool {
	return e.State == StateNone && e.Path == ""
}

// BranchInfo describes whether a working copy is bound to a remote branch.
type BranchInfo struct {
	Location string
	IsBound  bool
}

// VCSCommand identifies a version control operation.
type VCSCommand int

const (
	CloneCommand VCSCommand = iota
	PullCommand
	PushCommand
	CommitCommand
	ImportCommand
	UpdateCommand
	RevertCommand
	AnnotateCommand
	DiffCommand
	LogCommand
	StatusCommand
)

// VCSSettings holds the user-level settings of the version control client.
type VCSSettings struct {
	Binary   string
	UserName string
	Email    string
}
