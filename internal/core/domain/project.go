// Package domain holds the build step, project and version control types shared by all layers.
package domain

// BuildConfiguration is a named set of build settings of a target.
type BuildConfiguration struct {
	Name           string
	BuildDirectory string
	Environment    Environment
}

// Kit selects the toolchain used to build a target.
type Kit struct {
	Name        string
	ToolchainID string
}

// Target is the combination of a kit and its build configurations.
type Target struct {
	Kit            Kit
	Configurations []*BuildConfiguration
	ActiveName     string
}

// Configuration returns the build configuration with the given name, or nil.
func (t *Target) Configuration(name string) *BuildConfiguration {
	if t == nil {
		return nil
	}
	for _, bc := range t.Configurations {
		if bc.Name == name {
			return bc
		}
	}
	return nil
}

// ActiveBuildConfiguration returns the active build configuration, or nil when there is none.
func (t *Target) ActiveBuildConfiguration() *BuildConfiguration {
	if t == nil {
		return nil
	}
	return t.Configuration(t.ActiveName)
}

// StepSpec is the configured description of a make step.
type StepSpec struct {
	ID               string
	DisplayName      string
	BuildTarget      string
	AvailableTargets []string
	// Configuration pins the step to one build configuration instead of the active one.
	Configuration string
}

// Project is the loaded project file.
type Project struct {
	Root       string
	VCS        VCSSettings
	Toolchains map[string]ToolchainSpec
	Target     *Target
	Steps      []StepSpec
}

// Step returns the step with the given id.
func (p *Project) Step(id string) (StepSpec, bool) {
	for _, s := range p.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return StepSpec{}, false
}

// Toolchain returns the toolchain selected by the kit.
func (p *Project) Toolchain() (ToolchainSpec, bool) {
	if p.Target == nil || p.Target.Kit.ToolchainID == "" {
		return ToolchainSpec{}, false
	}
	tc, ok := p.Toolchains[p.Target.Kit.ToolchainID]
	return tc, ok
}
