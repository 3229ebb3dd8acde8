package domain

// Invocation describes one external process run.
type Invocation struct {
	Name        string
	Command     []string
	WorkingDir  string
	Environment []string
}
