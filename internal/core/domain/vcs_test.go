package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vcsmake/internal/core/domain"
)

func TestFileState_String(t *testing.T) {
	assert.Empty(t, domain.StateNone.String())
	assert.Equal(t, "Created", domain.StateCreated.String())
	assert.Equal(t, "ExecuteBitChanged", domain.StateExecuteBitChanged.String())
	assert.Empty(t, domain.FileState(99).String())
}

func TestStatusEntry_IsEmpty(t *testing.T) {
	assert.True(t, domain.StatusEntry{}.IsEmpty())
	assert.False(t, domain.StatusEntry{State: domain.StateUnknown}.IsEmpty())
	assert.False(t, domain.StatusEntry{Path: "a"}.IsEmpty())
}

func TestAbi_IsWindowsNonMSys(t *testing.T) {
	assert.True(t, domain.Abi{OS: domain.WindowsOS, Flavor: domain.MSVCFlavor}.IsWindowsNonMSys())
	assert.False(t, domain.Abi{OS: domain.WindowsOS, Flavor: domain.MSysFlavor}.IsWindowsNonMSys())
	assert.False(t, domain.Abi{OS: domain.LinuxOS, Flavor: domain.GenericFlavor}.IsWindowsNonMSys())
}

func TestTarget_ActiveBuildConfiguration(t *testing.T) {
	debug := &domain.BuildConfiguration{Name: "debug"}
	release := &domain.BuildConfiguration{Name: "release"}
	target := &domain.Target{
		Configurations: []*domain.BuildConfiguration{debug, release},
		ActiveName:     "release",
	}

	assert.Same(t, release, target.ActiveBuildConfiguration())
	assert.Same(t, debug, target.Configuration("debug"))
	assert.Nil(t, target.Configuration("missing"))

	var nilTarget *domain.Target
	assert.Nil(t, nilTarget.ActiveBuildConfiguration())
}

func TestProject_Toolchain(t *testing.T) {
	p := &domain.Project{
		Toolchains: map[string]domain.ToolchainSpec{"gcc": {ID: "gcc", Type: domain.GCCToolchain}},
		Target:     &domain.Target{Kit: domain.Kit{ToolchainID: "gcc"}},
		Steps:      []domain.StepSpec{{ID: "make"}},
	}

	tc, ok := p.Toolchain()
	assert.True(t, ok)
	assert.Equal(t, domain.GCCToolchain, tc.Type)

	_, ok = p.Step("make")
	assert.True(t, ok)
	_, ok = p.Step("other")
	assert.False(t, ok)

	p.Target.Kit.ToolchainID = ""
	_, ok = p.Toolchain()
	assert.False(t, ok)
}
