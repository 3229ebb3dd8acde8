// Package config loads the vcsmake.yaml project file.
package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

var validStepIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Load finds vcsmake.yaml in cwd or one of its parents and converts it to a domain.Project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var projectfile Projectfile
	if err := l.readAndUnmarshalYAML(configPath, &projectfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	project, err := l.buildProject(configPath, &projectfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return project, nil
}

// Find returns the path of the nearest vcsmake.yaml at or above cwd.
func (l *Loader) Find(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	if path, ok := l.Find(cwd); ok {
		return path, nil
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Projectfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func (l *Loader) buildProject(configPath string, pf *Projectfile) (*domain.Project, error) {
	root := resolveRoot(configPath, pf.Root)

	toolchains, err := buildToolchains(pf.Toolchains)
	if err != nil {
		return nil, err
	}

	if pf.Kit.Toolchain != "" {
		if _, ok := toolchains[pf.Kit.Toolchain]; !ok {
			return nil, zerr.With(domain.ErrUnknownToolchain, "toolchain", pf.Kit.Toolchain)
		}
	}

	target, err := buildTarget(root, pf)
	if err != nil {
		return nil, err
	}

	steps, err := l.buildSteps(pf.Steps, target)
	if err != nil {
		return nil, err
	}

	if len(steps) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s defines no make steps", domain.ProjectFileName))
	}

	return &domain.Project{
		Root: root,
		VCS: domain.VCSSettings{
			Binary:   pf.VCS.Binary,
			UserName: pf.VCS.User,
			Email:    pf.VCS.Email,
		},
		Toolchains: toolchains,
		Target:     target,
		Steps:      steps,
	}, nil
}

func buildToolchains(dtos map[string]*ToolchainDTO) (map[string]domain.ToolchainSpec, error) {
	toolchains := make(map[string]domain.ToolchainSpec, len(dtos))
	for id, dto := range dtos {
		if dto == nil {
			dto = &ToolchainDTO{}
		}

		tcType := domain.ToolchainType(dto.Type)
		if !slices.Contains(knownToolchainTypes, tcType) {
			err := zerr.With(domain.ErrInvalidToolchainType, "type", dto.Type)
			return nil, zerr.With(err, "toolchain", id)
		}

		toolchains[id] = domain.ToolchainSpec{
			ID:          id,
			Type:        tcType,
			Abi:         resolveAbi(tcType, dto.OS, dto.Flavor),
			MakeCommand: dto.Make,
		}
	}
	return toolchains, nil
}

var knownToolchainTypes = []domain.ToolchainType{
	domain.GCCToolchain,
	domain.ClangToolchain,
	domain.MinGWToolchain,
	domain.MSVCToolchain,
}

// resolveAbi fills in the host OS and a flavor derived from the toolchain type when unset.
func resolveAbi(tcType domain.ToolchainType, osName, flavor string) domain.Abi {
	abi := domain.Abi{OS: domain.OS(osName), Flavor: domain.OSFlavor(flavor)}
	if abi.OS == "" {
		abi.OS = hostOS()
	}
	if abi.Flavor == "" {
		switch {
		case tcType == domain.MSVCToolchain:
			abi.Flavor = domain.MSVCFlavor
		default:
			abi.Flavor = domain.GenericFlavor
		}
	}
	return abi
}

func hostOS() domain.OS {
	switch runtime.GOOS {
	case "linux":
		return domain.LinuxOS
	case "darwin":
		return domain.DarwinOS
	case "windows":
		return domain.WindowsOS
	default:
		return domain.UnknownOS
	}
}

func buildTarget(root string, pf *Projectfile) (*domain.Target, error) {
	target := &domain.Target{
		Kit: domain.Kit{Name: pf.Kit.Name, ToolchainID: pf.Kit.Toolchain},
	}

	for _, dto := range pf.Configurations {
		if dto == nil {
			continue
		}
		if target.Configuration(dto.Name) != nil {
			return nil, zerr.With(domain.ErrDuplicateBuildConfiguration, "configuration", dto.Name)
		}
		target.Configurations = append(target.Configurations, &domain.BuildConfiguration{
			Name:           dto.Name,
			BuildDirectory: resolveDir(root, dto.BuildDir),
			Environment:    domain.NewEnvironment(dto.Environment),
		})
	}

	switch {
	case pf.Active != "":
		if target.Configuration(pf.Active) == nil {
			return nil, zerr.With(domain.ErrUnknownBuildConfiguration, "configuration", pf.Active)
		}
		target.ActiveName = pf.Active
	case len(target.Configurations) > 0:
		target.ActiveName = target.Configurations[0].Name
	}

	return target, nil
}

func (l *Loader) buildSteps(dtos []*StepDTO, target *domain.Target) ([]domain.StepSpec, error) {
	steps := make([]domain.StepSpec, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))

	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		if !validStepIDRegex.MatchString(dto.ID) {
			return nil, zerr.With(domain.ErrInvalidStepID, "step", dto.ID)
		}
		if seen[dto.ID] {
			return nil, zerr.With(domain.ErrDuplicateStep, "step", dto.ID)
		}
		seen[dto.ID] = true

		if dto.Configuration != "" && target.Configuration(dto.Configuration) == nil {
			err := zerr.With(domain.ErrUnknownBuildConfiguration, "configuration", dto.Configuration)
			return nil, zerr.With(err, "step", dto.ID)
		}

		if dto.Target != "" && len(dto.Targets) > 0 && !slices.Contains(dto.Targets, dto.Target) {
			l.Logger.Warn(fmt.Sprintf("step %s: default target %q is not among its targets", dto.ID, dto.Target))
		}

		steps = append(steps, domain.StepSpec{
			ID:               dto.ID,
			DisplayName:      dto.Name,
			BuildTarget:      dto.Target,
			AvailableTargets: slices.Clone(dto.Targets),
			Configuration:    dto.Configuration,
		})
	}

	return steps, nil
}

// resolveRoot returns the project root: the file's directory, or the configured root relative to it.
func resolveRoot(configPath, configuredRoot string) string {
	return resolveDir(filepath.Dir(configPath), configuredRoot)
}

// resolveDir joins a relative dir onto base. An empty dir resolves to base.
func resolveDir(base, dir string) string {
	if dir == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Clean(filepath.Join(base, dir))
}
