// Package toolchain derives the default make command of a configured compiler toolchain.
package toolchain

import (
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Make programs probed per toolchain type, in order of preference.
var candidates = map[domain.ToolchainType][]string{
	domain.GCCToolchain:   {"make"},
	domain.ClangToolchain: {"make"},
	domain.MinGWToolchain: {"mingw32-make", "make"},
	domain.MSVCToolchain:  {"jom", "nmake"},
}

// Toolchain implements ports.Toolchain.
type Toolchain struct {
	spec    domain.ToolchainSpec
	locator ports.CommandLocator
}

// ID returns the configured toolchain id.
func (t *Toolchain) ID() string { return t.spec.ID }

// TargetAbi returns the ABI of the binaries the toolchain produces.
func (t *Toolchain) TargetAbi() domain.Abi { return t.spec.Abi }

// MakeCommand returns the make program for env. A command configured on the toolchain
// always wins. Otherwise the first candidate found in env is used, falling back to the
// last candidate when none is installed.
func (t *Toolchain) MakeCommand(env domain.Environment) string {
	if t.spec.MakeCommand != "" {
		return t.spec.MakeCommand
	}

	programs := t.programs()
	for _, program := range programs {
		if _, ok := t.locator.Locate(program, env); ok {
			return program
		}
	}
	return programs[len(programs)-1]
}

func (t *Toolchain) programs() []string {
	// MinGW inside an MSys shell behaves like a POSIX toolchain.
	if t.spec.Type == domain.MinGWToolchain && !t.spec.Abi.IsWindowsNonMSys() {
		return candidates[domain.GCCToolchain]
	}
	return candidates[t.spec.Type]
}

// Factory implements ports.ToolchainFactory.
type Factory struct {
	locator ports.CommandLocator
}

// NewFactory creates a Factory resolving make programs with locator.
func NewFactory(locator ports.CommandLocator) *Factory {
	return &Factory{locator: locator}
}

// New returns the toolchain described by spec.
func (f *Factory) New(spec domain.ToolchainSpec) (ports.Toolchain, error) {
	if _, ok := candidates[spec.Type]; !ok {
		err := zerr.With(domain.ErrInvalidToolchainType, "type", string(spec.Type))
		return nil, zerr.With(err, "toolchain", spec.ID)
	}
	return &Toolchain{spec: spec, locator: f.locator}, nil
}
