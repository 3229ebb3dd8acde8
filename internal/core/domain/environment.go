package domain

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Environment is a set of process environment variables.
// The zero value is an empty environment ready for use.
type Environment struct {
	vars map[string]string
}

// NewEnvironment builds an Environment from a map of variables.
func NewEnvironment(vars map[string]string) Environment {
	return Environment{vars: maps.Clone(vars)}
}

// EnvironmentFromList builds an Environment from KEY=VALUE entries such as os.Environ.
// Entries without a separator are ignored.
func EnvironmentFromList(entries []string) Environment {
	env := Environment{vars: make(map[string]string, len(entries))}
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env.vars[key] = value
	}
	return env
}

// SystemEnvironment returns the environment of the current process.
func SystemEnvironment() Environment {
	return EnvironmentFromList(os.Environ())
}

// Get returns the value of key, or an empty string when it is not set.
func (e Environment) Get(key string) string {
	return e.vars[key]
}

// Lookup returns the value of key and whether it is set.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Set assigns value to key.
func (e *Environment) Set(key, value string) {
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[key] = value
}

// Unset removes key.
func (e *Environment) Unset(key string) {
	delete(e.vars, key)
}

// Prepend puts value in front of the current value of key, joined by sep.
// When key is unset or empty it is set to value.
func (e *Environment) Prepend(key, value, sep string) {
	current := e.Get(key)
	if current == "" {
		e.Set(key, value)
		return
	}
	e.Set(key, value+sep+current)
}

// Clone returns an independent copy of the environment.
func (e Environment) Clone() Environment {
	return Environment{vars: maps.Clone(e.vars)}
}

// Len returns the number of variables.
func (e Environment) Len() int {
	return len(e.vars)
}

// Entries returns KEY=VALUE pairs sorted by key.
func (e Environment) Entries() []string {
	keys := slices.Sorted(maps.Keys(e.vars))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e.vars[k])
	}
	return out
}

// Path returns the PATH entries of the environment.
func (e Environment) Path() []string {
	p := e.Get("PATH")
	if p == "" {
		return nil
	}
	return filepath.SplitList(p)
}

// Merge returns a copy of e with every variable of other applied on top.
func (e Environment) Merge(other Environment) Environment {
	out := e.Clone()
	for k, v := range other.vars {
		out.Set(k, v)
	}
	return out
}

// SetupEnglishOutput forces tools run in env to print untranslated messages.
func SetupEnglishOutput(env *Environment) {
	env.Set("LC_MESSAGES", "en_US.utf8")
	env.Prepend("LANGUAGE", "en_US:en", ":")
}
