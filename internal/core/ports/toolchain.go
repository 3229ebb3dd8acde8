package ports

import "go.trai.ch/vcsmake/internal/core/domain"

// Toolchain is the compiler toolchain of a kit.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// ID returns the configured toolchain id.
	ID() string
	// TargetAbi returns the ABI of the binaries the toolchain produces.
	TargetAbi() domain.Abi
	// MakeCommand returns the default make command for the given environment.
	MakeCommand(env domain.Environment) string
}

// ToolchainFactory creates toolchains from their configured description.
type ToolchainFactory interface {
	// New returns the toolchain described by spec.
	New(spec domain.ToolchainSpec) (Toolchain, error)
}
