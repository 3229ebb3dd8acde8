package makestep

import (
	"slices"
	"sync"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
)

// Listener receives the new summary text after it changed.
type Listener func(text string)

// Configurator owns one make step and keeps its summary in sync with the step, the
// toolchain of the kit and the build configurations of the target.
type Configurator struct {
	mu sync.Mutex

	step          *domain.MakeStep
	configuration string
	target        *domain.Target
	toolchain     ports.Toolchain
	locator       ports.CommandLocator
	base          domain.Environment

	summary   Summary
	listeners map[int]Listener
	nextID    int
}

// Option configures a Configurator.
type Option func(*Configurator)

// WithConfiguration pins the step to the named build configuration instead of the active one.
func WithConfiguration(name string) Option {
	return func(c *Configurator) { c.configuration = name }
}

// WithBaseEnvironment sets the environment build configurations are applied to.
// It defaults to the environment of the current process.
func WithBaseEnvironment(env domain.Environment) Option {
	return func(c *Configurator) { c.base = env.Clone() }
}

// New creates a Configurator and derives the initial summary. tc may be nil.
func New(step *domain.MakeStep, target *domain.Target, tc ports.Toolchain, locator ports.CommandLocator, opts ...Option) *Configurator {
	c := &Configurator{
		step:      step,
		target:    target,
		toolchain: tc,
		locator:   locator,
		base:      domain.SystemEnvironment(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.summary = Derive(c.inputs(), c.locator)
	return c
}

// AddListener registers l and returns a function removing it again.
func (c *Configurator) AddListener(l Listener) (remove func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Step returns a snapshot of the step.
func (c *Configurator) Step() *domain.MakeStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step.Clone()
}

// Summary returns the current summary.
func (c *Configurator) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// SummaryText returns the current summary line.
func (c *Configurator) SummaryText() string {
	return c.Summary().Text
}

// MakeLabel returns the caption of the command override field.
func (c *Configurator) MakeLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MakeLabel(c.inputs())
}

// EffectiveCommand returns the command the step runs.
func (c *Configurator) EffectiveCommand() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.inputs()
	return EffectiveCommand(in.Step, in.Configuration, in.Toolchain, in.Base)
}

// SetBuildTarget selects or deselects target.
func (c *Configurator) SetBuildTarget(target string, on bool) {
	c.mutate(func() { c.step.SetBuildTarget(target, on) })
}

// SetBuildTargets replaces the selection with targets, in order.
func (c *Configurator) SetBuildTargets(targets []string) {
	c.mutate(func() {
		for _, t := range c.step.BuildTargets() {
			c.step.SetBuildTarget(t, false)
		}
		for _, t := range targets {
			c.step.SetBuildTarget(t, true)
		}
	})
}

// SetUserArguments replaces the raw argument string.
func (c *Configurator) SetUserArguments(args string) {
	c.mutate(func() { c.step.SetUserArguments(args) })
}

// SetMakeCommand replaces the command override. An empty command restores the toolchain default.
func (c *Configurator) SetMakeCommand(command string) {
	c.mutate(func() { c.step.SetMakeCommand(command) })
}

// SetClean marks the step as part of a clean build.
func (c *Configurator) SetClean(clean bool) {
	c.mutate(func() { c.step.SetClean(clean) })
}

// Restore replaces the step state with its persisted form in one change.
func (c *Configurator) Restore(values map[string]any) {
	c.mutate(func() { c.step.FromMap(values) })
}

// KitChanged replaces the toolchain of the kit. tc may be nil.
func (c *Configurator) KitChanged(tc ports.Toolchain) {
	c.mutate(func() { c.toolchain = tc })
}

// SettingsChanged re-derives the summary after global settings changed.
func (c *Configurator) SettingsChanged() {
	c.Refresh()
}

// EnvironmentChanged re-derives the summary when bc is the configuration in use.
func (c *Configurator) EnvironmentChanged(bc *domain.BuildConfiguration) {
	if c.affects(bc) {
		c.Refresh()
	}
}

// BuildDirectoryChanged re-derives the summary when bc is the configuration in use.
func (c *Configurator) BuildDirectoryChanged(bc *domain.BuildConfiguration) {
	if c.affects(bc) {
		c.Refresh()
	}
}

// ActiveConfigurationChanged makes name the active configuration of the target.
func (c *Configurator) ActiveConfigurationChanged(name string) {
	c.mutate(func() {
		if c.target != nil {
			c.target.ActiveName = name
		}
	})
}

// Reload applies a re-read project in one change: the step description, the target,
// the toolchain of the kit and, when values is not nil, the persisted step state.
func (c *Configurator) Reload(spec domain.StepSpec, target *domain.Target, tc ports.Toolchain, values map[string]any) {
	c.mutate(func() {
		c.step.ApplySpec(spec)
		c.configuration = spec.Configuration
		c.target = target
		c.toolchain = tc
		if values != nil {
			c.step.FromMap(values)
		}
	})
}

// TargetChanged replaces the target, for example after the project file was reloaded.
func (c *Configurator) TargetChanged(target *domain.Target) {
	c.mutate(func() { c.target = target })
}

// Refresh re-derives the summary and notifies listeners when its text changed.
func (c *Configurator) Refresh() {
	c.mutate(func() {})
}

func (c *Configurator) affects(bc *domain.BuildConfiguration) bool {
	if bc == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return bc == c.target.ActiveBuildConfiguration() || (c.configuration != "" && bc.Name == c.configuration)
}

// mutate applies fn, re-derives the summary and notifies listeners outside the lock.
func (c *Configurator) mutate(fn func()) {
	c.mu.Lock()
	fn()
	previous := c.summary.Text
	c.summary = Derive(c.inputs(), c.locator)
	text := c.summary.Text
	var listeners []Listener
	if text != previous {
		ids := make([]int, 0, len(c.listeners))
		for id := range c.listeners {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			listeners = append(listeners, c.listeners[id])
		}
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(text)
	}
}

// inputs collects the derivation inputs. The caller holds c.mu.
func (c *Configurator) inputs() Inputs {
	var bc *domain.BuildConfiguration
	if c.configuration != "" {
		bc = c.target.Configuration(c.configuration)
	}
	if bc == nil {
		bc = c.target.ActiveBuildConfiguration()
	}
	return Inputs{
		Step:          c.step,
		Configuration: bc,
		Toolchain:     c.toolchain,
		Base:          c.base,
	}
}
