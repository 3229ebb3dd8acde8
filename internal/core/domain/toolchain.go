package domain

// OS identifies the operating system a toolchain targets.
type OS string

const (
	LinuxOS   OS = "linux"
	DarwinOS  OS = "darwin"
	WindowsOS OS = "windows"
	UnknownOS OS = "unknown"
)

// OSFlavor refines an OS, such as the MSys or MSVC flavors on Windows.
type OSFlavor string

const (
	GenericFlavor OSFlavor = "generic"
	MSysFlavor    OSFlavor = "msys"
	MSVCFlavor    OSFlavor = "msvc"
)

// Abi describes the platform binaries produced by a toolchain run for.
type Abi struct {
	OS     OS
	Flavor OSFlavor
}

// IsWindowsNonMSys reports whether the ABI targets Windows outside of an MSys shell.
func (a Abi) IsWindowsNonMSys() bool {
	return a.OS == WindowsOS && a.Flavor != MSysFlavor
}

// ToolchainType selects how a toolchain picks its default make command.
type ToolchainType string

const (
	GCCToolchain   ToolchainType = "gcc"
	ClangToolchain ToolchainType = "clang"
	MinGWToolchain ToolchainType = "mingw"
	MSVCToolchain  ToolchainType = "msvc"
)

// ToolchainSpec is the configured description of a toolchain.
type ToolchainSpec struct {
	ID   string
	Type ToolchainType
	Abi  Abi
	// MakeCommand replaces the type's default when set.
	MakeCommand string
}
