package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no project file exists in the working directory or its parents.
	ErrConfigNotFound = zerr.New("could not find " + ProjectFileName)

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownToolchain is returned when the kit references a toolchain that is not defined.
	ErrUnknownToolchain = zerr.New("toolchain not found")

	// ErrInvalidToolchainType is returned when a toolchain declares an unsupported type.
	ErrInvalidToolchainType = zerr.New("invalid toolchain type, expected 'gcc', 'clang', 'mingw' or 'msvc'")

	// ErrUnknownBuildConfiguration is returned when a build configuration name does not exist.
	ErrUnknownBuildConfiguration = zerr.New("build configuration not found")

	// ErrDuplicateBuildConfiguration is returned when two build configurations share a name.
	ErrDuplicateBuildConfiguration = zerr.New("duplicate build configuration")

	// ErrStepNotFound is returned when a requested build step does not exist.
	ErrStepNotFound = zerr.New("build step not found")

	// ErrDuplicateStep is returned when two build steps share an id.
	ErrDuplicateStep = zerr.New("duplicate build step")

	// ErrInvalidStepID is returned when a build step id is empty or contains whitespace.
	ErrInvalidStepID = zerr.New("invalid build step id")

	// ErrUnknownTarget is returned when a target is not among the step's available targets.
	ErrUnknownTarget = zerr.New("target not available for this step")

	// ErrSettingsCreateFailed is returned when the settings directory cannot be created.
	ErrSettingsCreateFailed = zerr.New("failed to create settings directory")

	// ErrSettingsReadFailed is returned when step settings cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read step settings")

	// ErrSettingsUnmarshalFailed is returned when step settings cannot be decoded.
	ErrSettingsUnmarshalFailed = zerr.New("failed to unmarshal step settings")

	// ErrSettingsMarshalFailed is returned when step settings cannot be encoded.
	ErrSettingsMarshalFailed = zerr.New("failed to marshal step settings")

	// ErrSettingsWriteFailed is returned when step settings cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write step settings")

	// ErrEmptyCommand is returned when an invocation has no command.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCommandFailed is returned when an external process exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandNotFound is returned when a command cannot be located in the environment.
	ErrCommandNotFound = zerr.New("command not found in the environment")

	// ErrNotWorkingCopy is returned when a path is not inside a Bazaar working copy.
	ErrNotWorkingCopy = zerr.New("not a bazaar working copy")

	// ErrUnknownOperation is returned when an unknown version control operation is requested.
	ErrUnknownOperation = zerr.New("unknown version control operation")

	// ErrMessageFileFailed is returned when the commit message file cannot be written.
	ErrMessageFileFailed = zerr.New("failed to write commit message file")

	// ErrWatchFailed is returned when watching the project for changes fails.
	ErrWatchFailed = zerr.New("failed to watch project")

	// ErrNotInteractive is returned when a prompt is requested without a terminal.
	ErrNotInteractive = zerr.New("an interactive terminal is required")

	// ErrNoUserID is returned when neither a user name nor an email is configured.
	ErrNoUserID = zerr.New("no user name or email configured")

	// ErrNoSteps is returned when the project defines no make steps.
	ErrNoSteps = zerr.New("project defines no make steps")
)
