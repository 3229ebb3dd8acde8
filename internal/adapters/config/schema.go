package config

// Projectfile represents the structure of the vcsmake.yaml project file.
type Projectfile struct {
	Version        string                   `yaml:"version"`
	Root           string                   `yaml:"root"`
	VCS            VCSDTO                   `yaml:"vcs"`
	Toolchains     map[string]*ToolchainDTO `yaml:"toolchains"`
	Kit            KitDTO                   `yaml:"kit"`
	Configurations []*ConfigurationDTO      `yaml:"configurations"`
	Active         string                   `yaml:"active"`
	Steps          []*StepDTO               `yaml:"steps"`
}

// VCSDTO configures the version control client.
type VCSDTO struct {
	Binary string `yaml:"binary"`
	User   string `yaml:"user"`
	Email  string `yaml:"email"`
}

// ToolchainDTO represents a toolchain definition.
type ToolchainDTO struct {
	Type   string `yaml:"type"`
	OS     string `yaml:"os"`
	Flavor string `yaml:"flavor"`
	Make   string `yaml:"make"`
}

// KitDTO selects the toolchain of the target.
type KitDTO struct {
	Name      string `yaml:"name"`
	Toolchain string `yaml:"toolchain"`
}

// ConfigurationDTO represents a build configuration.
type ConfigurationDTO struct {
	Name        string            `yaml:"name"`
	BuildDir    string            `yaml:"buildDir"`
	Environment map[string]string `yaml:"environment"`
}

// StepDTO represents a make step.
type StepDTO struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Target        string   `yaml:"target"`
	Targets       []string `yaml:"targets"`
	Configuration string   `yaml:"configuration"`
}
