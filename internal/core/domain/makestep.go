package domain

import (
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Settings key suffixes appended to the step id.
const (
	BuildTargetsSuffix  = ".BuildTargets"
	MakeArgumentsSuffix = ".MakeArguments"
	MakeCommandSuffix   = ".MakeCommand"
	CleanSuffix         = ".Clean"
)

// DefaultMakeStepName is the display name used when a step does not set one.
const DefaultMakeStepName = "Make"

// MakeStep holds the user-editable state of one make invocation in a build.
type MakeStep struct {
	id               string
	displayName      string
	availableTargets []string

	buildTargets  []string
	makeArguments string
	makeCommand   string
	clean         bool
}

// NewMakeStep creates a step. A non-empty buildTarget is selected right away.
func NewMakeStep(id, buildTarget string, availableTargets []string) *MakeStep {
	s := &MakeStep{
		id:               id,
		displayName:      DefaultMakeStepName,
		availableTargets: slices.Clone(availableTargets),
	}
	if buildTarget != "" {
		s.SetBuildTarget(buildTarget, true)
	}
	return s
}

// NewMakeStepFromSpec creates a step from its configured description.
func NewMakeStepFromSpec(spec StepSpec) *MakeStep {
	s := NewMakeStep(spec.ID, spec.BuildTarget, spec.AvailableTargets)
	s.ApplySpec(spec)
	return s
}

// ApplySpec takes over the display name and the available targets of spec.
// The selected targets are kept.
func (s *MakeStep) ApplySpec(spec StepSpec) {
	s.displayName = DefaultMakeStepName
	if spec.DisplayName != "" {
		s.displayName = spec.DisplayName
	}
	s.availableTargets = slices.Clone(spec.AvailableTargets)
}

// ID returns the stable identifier used to key persisted settings.
func (s *MakeStep) ID() string { return s.id }

// DisplayName returns the name shown in front of the summary.
func (s *MakeStep) DisplayName() string { return s.displayName }

// AvailableTargets returns the targets the user can choose from.
func (s *MakeStep) AvailableTargets() []string { return slices.Clone(s.availableTargets) }

// BuildTargets returns the selected targets in selection order.
func (s *MakeStep) BuildTargets() []string { return slices.Clone(s.buildTargets) }

// UserArguments returns the raw argument string typed by the user.
func (s *MakeStep) UserArguments() string { return s.makeArguments }

// MakeCommand returns the command override, empty when the toolchain default applies.
func (s *MakeStep) MakeCommand() string { return s.makeCommand }

// IsClean reports whether the step is part of a clean build.
func (s *MakeStep) IsClean() bool { return s.clean }

// BuildsTarget reports whether target is selected.
func (s *MakeStep) BuildsTarget(target string) bool {
	return slices.Contains(s.buildTargets, target)
}

// SetBuildTarget selects or deselects target. Selecting twice keeps one entry.
func (s *MakeStep) SetBuildTarget(target string, on bool) {
	idx := slices.Index(s.buildTargets, target)
	switch {
	case on && idx < 0:
		s.buildTargets = append(s.buildTargets, target)
	case !on && idx >= 0:
		s.buildTargets = slices.Delete(s.buildTargets, idx, idx+1)
	}
}

// SetUserArguments replaces the raw argument string.
func (s *MakeStep) SetUserArguments(args string) { s.makeArguments = args }

// SetMakeCommand replaces the command override.
func (s *MakeStep) SetMakeCommand(command string) { s.makeCommand = command }

// Clone returns a deep copy of the step.
func (s *MakeStep) Clone() *MakeStep {
	c := *s
	c.availableTargets = slices.Clone(s.availableTargets)
	c.buildTargets = slices.Clone(s.buildTargets)
	return &c
}

// SetClean marks the step as part of a clean build.
func (s *MakeStep) SetClean(clean bool) { s.clean = clean }

// AllArguments returns the user arguments followed by the selected targets,
// each target quoted for the shell when needed.
func (s *MakeStep) AllArguments() string {
	parts := make([]string, 0, len(s.buildTargets)+1)
	if s.makeArguments != "" {
		parts = append(parts, s.makeArguments)
	}
	for _, t := range s.buildTargets {
		parts = append(parts, QuoteArg(t))
	}
	return strings.Join(parts, " ")
}

// ToMap returns the persisted form of the step.
func (s *MakeStep) ToMap() map[string]any {
	targets := s.buildTargets
	if targets == nil {
		targets = []string{}
	}
	return map[string]any{
		s.id + BuildTargetsSuffix:  slices.Clone(targets),
		s.id + MakeArgumentsSuffix: s.makeArguments,
		s.id + MakeCommandSuffix:   s.makeCommand,
		s.id + CleanSuffix:         s.clean,
	}
}

// FromMap restores the step from its persisted form.
// Missing keys and values of an unexpected type reset the field to its zero value.
func (s *MakeStep) FromMap(m map[string]any) {
	s.buildTargets = stringList(m[s.id+BuildTargetsSuffix])
	s.makeArguments, _ = m[s.id+MakeArgumentsSuffix].(string)
	s.makeCommand, _ = m[s.id+MakeCommandSuffix].(string)
	s.clean = boolValue(m[s.id+CleanSuffix])
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}

func boolValue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	default:
		return false
	}
}

// QuoteArg quotes arg for a POSIX shell when it contains characters the shell would interpret.
func QuoteArg(arg string) string {
	return shellquote.Join(arg)
}
