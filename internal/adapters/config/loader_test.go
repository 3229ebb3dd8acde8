package config_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcsmake/internal/adapters/config"
	"go.trai.ch/vcsmake/internal/adapters/fs"
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const fullProject = `
version: "1"
vcs:
  binary: bzr
  user: Jane Doe
  email: jane@example.com
toolchains:
  gcc:
    type: gcc
    os: linux
  msvc2022:
    type: msvc
    os: windows
    make: jom
kit:
  name: Desktop
  toolchain: gcc
configurations:
  - name: Debug
    buildDir: build/debug
    environment:
      CFLAGS: -O0
  - name: Release
    buildDir: /opt/build/release
active: Release
steps:
  - id: make.1
    name: Build
    target: all
    targets: [all, clean, install]
  - id: make.2
    targets: [docs]
    configuration: Debug
`

func newLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log, fs.NewMapFSAdapter("/work", files)), log
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	return zErr.Metadata()
}

func TestLoader_Load(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"src/vcsmake.yaml": {Data: []byte(fullProject)},
	})

	project, err := loader.Load("/work/src")
	require.NoError(t, err)

	assert.Equal(t, "/work/src", project.Root)
	assert.Equal(t, domain.VCSSettings{Binary: "bzr", UserName: "Jane Doe", Email: "jane@example.com"}, project.VCS)

	tc, ok := project.Toolchain()
	require.True(t, ok)
	assert.Equal(t, domain.ToolchainSpec{
		ID:   "gcc",
		Type: domain.GCCToolchain,
		Abi:  domain.Abi{OS: domain.LinuxOS, Flavor: domain.GenericFlavor},
	}, tc)

	msvc := project.Toolchains["msvc2022"]
	assert.Equal(t, domain.Abi{OS: domain.WindowsOS, Flavor: domain.MSVCFlavor}, msvc.Abi)
	assert.Equal(t, "jom", msvc.MakeCommand)

	require.Len(t, project.Target.Configurations, 2)
	debug := project.Target.Configuration("Debug")
	require.NotNil(t, debug)
	assert.Equal(t, filepath.Join("/work/src", "build", "debug"), debug.BuildDirectory)
	assert.Equal(t, "-O0", debug.Environment.Get("CFLAGS"))

	active := project.Target.ActiveBuildConfiguration()
	require.NotNil(t, active)
	assert.Equal(t, "Release", active.Name)
	assert.Equal(t, "/opt/build/release", active.BuildDirectory)

	require.Len(t, project.Steps, 2)
	assert.Equal(t, domain.StepSpec{
		ID:               "make.1",
		DisplayName:      "Build",
		BuildTarget:      "all",
		AvailableTargets: []string{"all", "clean", "install"},
	}, project.Steps[0])
	assert.Equal(t, "Debug", project.Steps[1].Configuration)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"vcsmake.yaml":       {Data: []byte(fullProject)},
		"src/lib/.gitignore": {Data: []byte("")},
	})

	project, err := loader.Load("/work/src/lib")
	require.NoError(t, err)
	assert.Equal(t, "/work", project.Root)
}

func TestLoader_Find(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"src/vcsmake.yaml": {Data: []byte(fullProject)},
		"docs/index.md":    {Data: []byte("")},
	})

	path, ok := loader.Find("/work/src")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/work/src", "vcsmake.yaml"), path)

	_, ok = loader.Find("/work/docs")
	assert.False(t, ok)
}

func TestLoader_Load_ConfiguredRoot(t *testing.T) {
	loader, log := newLoader(t, fstest.MapFS{
		"conf/vcsmake.yaml": {Data: []byte("root: ..\n")},
	})
	log.EXPECT().Warn("vcsmake.yaml defines no make steps")

	project, err := loader.Load("/work/conf")
	require.NoError(t, err)
	assert.Equal(t, "/work", project.Root)
	assert.Nil(t, project.Target.ActiveBuildConfiguration())
	_, ok := project.Toolchain()
	assert.False(t, ok)
}

func TestLoader_Load_FirstConfigurationIsActiveByDefault(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"vcsmake.yaml": {Data: []byte(`
configurations:
  - name: Debug
  - name: Release
steps:
  - id: make.1
`)},
	})

	project, err := loader.Load("/work")
	require.NoError(t, err)
	assert.Equal(t, "Debug", project.Target.ActiveName)
	assert.Equal(t, "/work", project.Target.ActiveBuildConfiguration().BuildDirectory)
}

func TestLoader_Load_WarnsOnForeignDefaultTarget(t *testing.T) {
	loader, log := newLoader(t, fstest.MapFS{
		"vcsmake.yaml": {Data: []byte(`
steps:
  - id: make.1
    target: world
    targets: [all]
`)},
	})
	log.EXPECT().Warn(`step make.1: default target "world" is not among its targets`)

	project, err := loader.Load("/work")
	require.NoError(t, err)
	assert.Equal(t, "world", project.Steps[0].BuildTarget)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{})

	_, err := loader.Load("/work/src")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigNotFound.Error())
	assert.Equal(t, "/work/src", metadata(t, err)["cwd"])
}

func TestLoader_Load_ParseError(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"vcsmake.yaml": {Data: []byte("steps: [unterminated\n")},
	})

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantKey string
		wantVal string
	}{
		{
			name:    "invalid toolchain type",
			content: "toolchains:\n  tc:\n    type: icc\n",
			wantErr: domain.ErrInvalidToolchainType,
			wantKey: "type",
			wantVal: "icc",
		},
		{
			name:    "kit references unknown toolchain",
			content: "kit:\n  toolchain: missing\n",
			wantErr: domain.ErrUnknownToolchain,
			wantKey: "toolchain",
			wantVal: "missing",
		},
		{
			name:    "duplicate configuration",
			content: "configurations:\n  - name: Debug\n  - name: Debug\n",
			wantErr: domain.ErrDuplicateBuildConfiguration,
			wantKey: "configuration",
			wantVal: "Debug",
		},
		{
			name:    "unknown active configuration",
			content: "configurations:\n  - name: Debug\nactive: Release\n",
			wantErr: domain.ErrUnknownBuildConfiguration,
			wantKey: "configuration",
			wantVal: "Release",
		},
		{
			name:    "invalid step id",
			content: "steps:\n  - id: \"make 1\"\n",
			wantErr: domain.ErrInvalidStepID,
			wantKey: "step",
			wantVal: "make 1",
		},
		{
			name:    "empty step id",
			content: "steps:\n  - name: Build\n",
			wantErr: domain.ErrInvalidStepID,
			wantKey: "step",
			wantVal: "",
		},
		{
			name:    "duplicate step",
			content: "steps:\n  - id: make.1\n  - id: make.1\n",
			wantErr: domain.ErrDuplicateStep,
			wantKey: "step",
			wantVal: "make.1",
		},
		{
			name:    "step pinned to unknown configuration",
			content: "steps:\n  - id: make.1\n    configuration: Profile\n",
			wantErr: domain.ErrUnknownBuildConfiguration,
			wantKey: "configuration",
			wantVal: "Profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, fstest.MapFS{
				"vcsmake.yaml": {Data: []byte(tt.content)},
			})

			_, err := loader.Load("/work")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())

			meta := metadata(t, err)
			assert.Equal(t, tt.wantVal, meta[tt.wantKey])
			assert.Equal(t, filepath.Join("/work", domain.ProjectFileName), meta["path"])
		})
	}
}
