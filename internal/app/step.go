package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/vcsmake/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/engine/makestep"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Step is a make step opened from the project file together with its saved settings.
type Step struct {
	*makestep.Configurator

	Project *domain.Project
	Spec    domain.StepSpec
}

// StepChange lists the edits UpdateStep applies. Nil fields are left alone.
type StepChange struct {
	Enable    []string
	Disable   []string
	Targets   []string
	Arguments *string
	Command   *string
	Clean     *bool
}

// OpenStep loads the step with the given id, or the first step when id is empty.
func (a *App) OpenStep(cwd, id string) (*Step, error) {
	project, err := a.loadProject(cwd)
	if err != nil {
		return nil, err
	}

	spec, err := findStep(project, id)
	if err != nil {
		return nil, err
	}

	tc, err := a.toolchain(project)
	if err != nil {
		return nil, err
	}

	step := domain.NewMakeStepFromSpec(spec)
	values, err := a.settings.Load(project.Root, spec.ID)
	if err != nil {
		return nil, err
	}
	if values != nil {
		step.FromMap(values)
	}

	var opts []makestep.Option
	if spec.Configuration != "" {
		opts = append(opts, makestep.WithConfiguration(spec.Configuration))
	}
	if a.baseEnv != nil {
		opts = append(opts, makestep.WithBaseEnvironment(*a.baseEnv))
	}

	return &Step{
		Configurator: makestep.New(step, project.Target, tc, a.locator, opts...),
		Project:      project,
		Spec:         spec,
	}, nil
}

func findStep(project *domain.Project, id string) (domain.StepSpec, error) {
	if id == "" {
		if len(project.Steps) == 0 {
			return domain.StepSpec{}, zerr.With(domain.ErrNoSteps, "root", project.Root)
		}
		return project.Steps[0], nil
	}
	spec, ok := project.Step(id)
	if !ok {
		return domain.StepSpec{}, zerr.With(domain.ErrStepNotFound, "step", id)
	}
	return spec, nil
}

// SaveStep persists the current state of step.
func (a *App) SaveStep(step *Step) error {
	return a.settings.Save(step.Project.Root, step.Spec.ID, step.Step().ToMap())
}

// UpdateStep applies change to the step, saves it and returns the new summary.
func (a *App) UpdateStep(cwd, id string, change StepChange) (makestep.Summary, error) {
	step, err := a.OpenStep(cwd, id)
	if err != nil {
		return makestep.Summary{}, err
	}

	available := step.Spec.AvailableTargets
	for _, target := range slices.Concat(change.Enable, change.Targets) {
		if len(available) > 0 && !slices.Contains(available, target) {
			return makestep.Summary{}, zerr.With(zerr.With(domain.ErrUnknownTarget, "target", target), "step", step.Spec.ID)
		}
	}

	if change.Targets != nil {
		step.SetBuildTargets(change.Targets)
	}
	for _, target := range change.Enable {
		step.SetBuildTarget(target, true)
	}
	for _, target := range change.Disable {
		step.SetBuildTarget(target, false)
	}
	if change.Arguments != nil {
		step.SetUserArguments(*change.Arguments)
	}
	if change.Command != nil {
		step.SetMakeCommand(*change.Command)
	}
	if change.Clean != nil {
		step.SetClean(*change.Clean)
	}

	if err := a.SaveStep(step); err != nil {
		return makestep.Summary{}, err
	}
	return step.Summary(), nil
}

// RunStep runs the make command of the step in its build directory.
func (a *App) RunStep(ctx context.Context, cwd, id string, stdout, stderr io.Writer) error {
	step, err := a.OpenStep(cwd, id)
	if err != nil {
		return err
	}

	summary := step.Summary()
	if !summary.Ready {
		return zerr.With(domain.ErrCommandNotFound, "summary", summary.Text)
	}

	line := domain.QuoteArg(summary.Command)
	if summary.Arguments != "" {
		line += " " + summary.Arguments
	}

	a.logger.Info(summary.Text)
	inv := &domain.Invocation{
		Name:        step.Spec.ID,
		Command:     []string{"sh", "-c", line},
		WorkingDir:  summary.WorkingDir,
		Environment: summary.Environment.Entries(),
	}
	if err := a.executor.Execute(ctx, inv, stdout, stderr); err != nil {
		return zerr.With(err, "step", step.Spec.ID)
	}
	return nil
}

// SelectTargets lets the user pick the build targets of the step in a checklist.
// outputMode is the value of the --output flag.
func (a *App) SelectTargets(ctx context.Context, cwd, id, outputMode string) (makestep.Summary, error) {
	if detector.ResolveMode(a.detectMode(), outputMode) != detector.ModeInteractive {
		return makestep.Summary{}, domain.ErrNotInteractive
	}

	step, err := a.OpenStep(cwd, id)
	if err != nil {
		return makestep.Summary{}, err
	}

	current := step.Step()
	title := fmt.Sprintf("%s targets (%s)", current.DisplayName(), current.ID())
	chosen, ok, err := a.picker.Pick(ctx, title, current.AvailableTargets(), current.BuildTargets())
	if err != nil {
		return makestep.Summary{}, err
	}
	if !ok {
		a.logger.Info("selection cancelled")
		return step.Summary(), nil
	}

	step.SetBuildTargets(chosen)
	if err := a.SaveStep(step); err != nil {
		return makestep.Summary{}, err
	}
	return step.Summary(), nil
}

// WatchStep prints the summary of the step and prints it again every time the project
// file or the saved step settings change it. It returns when ctx is done.
func (a *App) WatchStep(ctx context.Context, cwd, id string, out io.Writer) error {
	step, err := a.OpenStep(cwd, id)
	if err != nil {
		return err
	}

	projectFile, ok := a.configLoader.Find(cwd)
	if !ok {
		return zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
	}
	stepsDir := filepath.Join(step.Project.Root, domain.DefaultStepsPath())
	if err := os.MkdirAll(stepsDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", stepsDir)
	}

	remove := step.AddListener(func(text string) {
		_, _ = fmt.Fprintln(out, text)
	})
	defer remove()
	_, _ = fmt.Fprintln(out, step.SummaryText())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, projectFile, stepsDir); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	g.Go(func() error {
		defer cancel()
		for range a.watcher.Events() {
			a.reloadStep(step, cwd)
		}
		return nil
	})

	return g.Wait()
}

// reloadStep re-reads the project file and the saved settings into step.
// Failures are logged and leave the step as it was.
func (a *App) reloadStep(step *Step, cwd string) {
	project, err := a.loadProject(cwd)
	if err != nil {
		a.logger.Error(err)
		return
	}
	spec, ok := project.Step(step.Spec.ID)
	if !ok {
		a.logger.Warn(fmt.Sprintf("step %s was removed from %s", step.Spec.ID, domain.ProjectFileName))
		return
	}

	tc, err := a.toolchain(project)
	if err != nil {
		a.logger.Error(err)
		return
	}
	values, err := a.settings.Load(project.Root, step.Spec.ID)
	if err != nil {
		a.logger.Error(err)
		return
	}

	step.Project = project
	step.Spec = spec
	step.Reload(spec, project.Target, tc, values)
}
