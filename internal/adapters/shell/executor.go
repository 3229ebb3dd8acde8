// Package shell runs external processes for the version control client and make steps.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Process represents a running command.
type Process interface {
	Wait() error
	Resize(rows, cols int) error
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()

	// Drain the copy loop so no trailing output is lost.
	<-p.ioDone

	return err
}

func (p *ptyProcess) Resize(rows, cols int) error {
	if rows > math.MaxUint16 || cols > math.MaxUint16 || rows < 0 || cols < 0 {
		return errors.New("terminal size out of bounds")
	}

	return pty.Setsize(p.ptmx, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Start launches the invocation in a PTY. Output of the process is copied to stdout.
// It returns a Process to control and wait for the command.
func (e *Executor) Start(ctx context.Context, inv *domain.Invocation, stdout io.Writer) (Process, error) {
	cmd, err := command(ctx, inv)
	if err != nil {
		return nil, err
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start pty"), "command", inv.Name)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()

		// The PTY merges stdout and stderr.
		_, _ = io.Copy(stdout, ptmx)
	}()

	return &ptyProcess{
		cmd:    cmd,
		ptmx:   ptmx,
		ioDone: ioDone,
	}, nil
}

// Execute runs the invocation in a PTY and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation, stdout, _ io.Writer) error {
	proc, err := e.Start(ctx, inv, stdout)
	if err != nil {
		return err
	}

	if err := proc.Wait(); err != nil {
		return commandFailed(err, inv)
	}
	return nil
}

// Output runs the invocation with plain pipes and returns its stdout.
// Lines written to stderr are logged as warnings.
func (e *Executor) Output(ctx context.Context, inv *domain.Invocation) ([]byte, error) {
	cmd, err := command(ctx, inv)
	if err != nil {
		return nil, err
	}

	var stdout bytes.Buffer
	stderrLog := &logWriter{logger: e.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderrLog

	runErr := cmd.Run()
	_ = stderrLog.Close()
	if runErr != nil {
		return stdout.Bytes(), commandFailed(runErr, inv)
	}
	return stdout.Bytes(), nil
}

func command(ctx context.Context, inv *domain.Invocation) (*exec.Cmd, error) {
	if inv == nil || len(inv.Command) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	name := inv.Command[0]
	args := inv.Command[1:]

	env := inv.Environment
	if len(env) == 0 {
		env = os.Environ()
	}

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	if inv.WorkingDir != "" {
		cmd.Dir = inv.WorkingDir
	}
	cmd.Env = env

	return cmd, nil
}

func commandFailed(err error, inv *domain.Invocation) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	wrapped = zerr.With(wrapped, "command", inv.Name)
	return zerr.With(wrapped, "exit_code", exitCode)
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Warn(msg)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
