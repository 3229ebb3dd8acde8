// Package makestep derives the summary line of a make build step and keeps it current.
package makestep

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
)

const (
	// MakeFlagsVar is the variable nmake and jom read their default flags from.
	MakeFlagsVar = "MAKEFLAGS"

	noToolchainText     = "Make: No toolchain set in target."
	noConfigurationText = "Make: No build configuration."
)

// Summary is the result of one derivation.
type Summary struct {
	// Text is the one-line description shown to the user.
	Text string
	// Ready reports whether Command, Arguments, WorkingDir and Environment describe a runnable make call.
	Ready bool

	Command     string
	Arguments   string
	WorkingDir  string
	Environment domain.Environment
}

// Inputs are the values a summary is derived from.
type Inputs struct {
	Step *domain.MakeStep
	// Configuration is the build configuration of the step, nil when none is available.
	Configuration *domain.BuildConfiguration
	// Toolchain is the toolchain of the kit, nil when the kit has none.
	Toolchain ports.Toolchain
	// Base is the environment the configuration's variables are applied to.
	Base domain.Environment
}

// buildEnvironment returns the environment of bc applied on top of base.
func buildEnvironment(base domain.Environment, bc *domain.BuildConfiguration) domain.Environment {
	if bc == nil {
		return base.Clone()
	}
	return base.Merge(bc.Environment)
}

// EffectiveCommand returns the make command of step: the override when set, otherwise the
// toolchain default for the environment of bc. Without toolchain or configuration it is empty.
func EffectiveCommand(step *domain.MakeStep, bc *domain.BuildConfiguration, tc ports.Toolchain, base domain.Environment) string {
	if cmd := step.MakeCommand(); cmd != "" {
		return cmd
	}
	if bc == nil || tc == nil {
		return ""
	}
	return tc.MakeCommand(buildEnvironment(base, bc))
}

// MakeLabel returns the caption of the command override field.
func MakeLabel(in Inputs) string {
	if in.Toolchain == nil || in.Configuration == nil {
		return "Make:"
	}
	def := in.Toolchain.MakeCommand(buildEnvironment(in.Base, in.Configuration))
	if def == "" {
		return "Make:"
	}
	return fmt.Sprintf("Override %s:", filepath.FromSlash(def))
}

// Derive computes the summary of in.Step. locator decides whether the command exists in the
// build environment.
func Derive(in Inputs, locator ports.CommandLocator) Summary {
	if in.Toolchain == nil {
		return Summary{Text: noToolchainText}
	}
	if in.Configuration == nil {
		return Summary{Text: noConfigurationText}
	}

	command := EffectiveCommand(in.Step, in.Configuration, in.Toolchain, in.Base)

	env := buildEnvironment(in.Base, in.Configuration)
	domain.SetupEnglishOutput(&env)
	if in.Step.MakeCommand() == "" && in.Toolchain.TargetAbi().IsWindowsNonMSys() {
		// Keeps nmake and jom from printing their banner.
		env.Set(MakeFlagsVar, "L"+env.Get(MakeFlagsVar))
	}

	summary := Summary{
		Command:     command,
		Arguments:   in.Step.AllArguments(),
		WorkingDir:  in.Configuration.BuildDirectory,
		Environment: env,
	}

	if _, ok := locator.Locate(command, env); !ok {
		summary.Text = fmt.Sprintf("Make: %s not found in the environment.", command)
		return summary
	}

	summary.Ready = true
	summary.Text = summaryInWorkdir(in.Step.DisplayName(), command, summary.Arguments, summary.WorkingDir)
	return summary
}

func summaryInWorkdir(displayName, command, args, workDir string) string {
	var b strings.Builder
	b.WriteString(displayName)
	b.WriteString(": ")
	b.WriteString(filepath.Base(command))
	if args != "" {
		b.WriteString(" ")
		b.WriteString(args)
	}
	b.WriteString(" in ")
	b.WriteString(filepath.FromSlash(workDir))
	return b.String()
}
