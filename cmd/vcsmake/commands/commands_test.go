package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcsmake/cmd/vcsmake/commands"
	"go.trai.ch/vcsmake/internal/adapters/bazaar"
	"go.trai.ch/vcsmake/internal/app"
	"go.trai.ch/vcsmake/internal/build"
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/engine/makestep"
)

type mockApp struct {
	updateFunc func(cwd, id string, change app.StepChange) (makestep.Summary, error)
	selectFunc func(ctx context.Context, cwd, id, outputMode string) (makestep.Summary, error)
	runVCSFunc func(ctx context.Context, cwd string, req bazaar.Request, out io.Writer) error
	diffFunc   func(ctx context.Context, cwd string, params bazaar.DiffParameters, format bazaar.DiffFormatOpt, out io.Writer) error
	commitFunc func(ctx context.Context, cwd, message string, req bazaar.Request, out io.Writer) error
	statusFunc func(ctx context.Context, cwd, file string) ([]domain.StatusEntry, error)
	branchInfo domain.BranchInfo
}

func (m *mockApp) OpenStep(_, _ string) (*app.Step, error) {
	return nil, errors.New("not implemented")
}

func (m *mockApp) UpdateStep(cwd, id string, change app.StepChange) (makestep.Summary, error) {
	if m.updateFunc != nil {
		return m.updateFunc(cwd, id, change)
	}
	return makestep.Summary{}, nil
}

func (m *mockApp) RunStep(_ context.Context, _, _ string, _, _ io.Writer) error {
	return nil
}

func (m *mockApp) SelectTargets(ctx context.Context, cwd, id, outputMode string) (makestep.Summary, error) {
	if m.selectFunc != nil {
		return m.selectFunc(ctx, cwd, id, outputMode)
	}
	return makestep.Summary{}, nil
}

func (m *mockApp) WatchStep(_ context.Context, _, _ string, _ io.Writer) error {
	return nil
}

func (m *mockApp) VCSArgs(req bazaar.Request) ([]string, error) {
	return bazaar.Arguments(req)
}

func (m *mockApp) RunVCS(ctx context.Context, cwd string, req bazaar.Request, out io.Writer) error {
	if m.runVCSFunc != nil {
		return m.runVCSFunc(ctx, cwd, req, out)
	}
	return nil
}

func (m *mockApp) Root(cwd string) (string, error) {
	return cwd, nil
}

func (m *mockApp) BranchInfo(_ string) (domain.BranchInfo, error) {
	return m.branchInfo, nil
}

func (m *mockApp) Status(ctx context.Context, cwd, file string) ([]domain.StatusEntry, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, cwd, file)
	}
	return nil, nil
}

func (m *mockApp) Whoami(_ context.Context, _ string) error {
	return nil
}

func (m *mockApp) Diff(ctx context.Context, cwd string, params bazaar.DiffParameters, format bazaar.DiffFormatOpt, out io.Writer) error {
	if m.diffFunc != nil {
		return m.diffFunc(ctx, cwd, params, format, out)
	}
	return nil
}

func (m *mockApp) Commit(ctx context.Context, cwd, message string, req bazaar.Request, out io.Writer) error {
	if m.commitFunc != nil {
		return m.commitFunc(ctx, cwd, message, req, out)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_BzrArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "pull with options",
			args: []string{"bzr", "args", "pull", "--source", "lp:foo", "--remember", "--overwrite", "-r", "10"},
			want: "pull --remember --overwrite -r 10 lp:foo\n",
		},
		{
			name: "clone runs as branch",
			args: []string{"bzr", "args", "clone", "--source", "lp:foo", "--dest", "foo", "--stacked"},
			want: "branch --stacked lp:foo foo\n",
		},
		{
			name: "diff folds whitespace flags",
			args: []string{"bzr", "args", "diff", "-w", "-B", "a.c"},
			want: "diff '--diff-options=-w -B' a.c\n",
		},
		{
			name: "whoami quotes the identity",
			args: []string{"bzr", "args", "whoami", "--user", "Jane Doe", "--email", "jane@example.com"},
			want: "whoami 'Jane Doe <jane@example.com>'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, &mockApp{}, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommands_BzrArgs_UnknownOperation(t *testing.T) {
	_, err := execute(t, &mockApp{}, "bzr", "args", "merge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownOperation.Error())
}

func TestCommands_BzrRun(t *testing.T) {
	var got bazaar.Request
	var gotCwd string
	mock := &mockApp{
		runVCSFunc: func(_ context.Context, cwd string, req bazaar.Request, _ io.Writer) error {
			got = req
			gotCwd = cwd
			return nil
		},
	}

	_, err := execute(t, mock, "-C", "/work", "bzr", "run", "update", "-r", "42")
	require.NoError(t, err)
	assert.Equal(t, "/work", gotCwd)
	assert.Equal(t, "update", got.Operation)
	assert.Equal(t, "42", got.Revision)
}

func TestCommands_BzrStatus(t *testing.T) {
	mock := &mockApp{
		statusFunc: func(_ context.Context, _, file string) ([]domain.StatusEntry, error) {
			assert.Equal(t, "src", file)
			return []domain.StatusEntry{
				{State: domain.StateModified, Path: "src/a.c"},
				{State: domain.StateCreated, Path: "src/b.c"},
			}, nil
		},
	}

	out, err := execute(t, mock, "bzr", "status", "src")
	require.NoError(t, err)
	assert.Equal(t, "Modified           src/a.c\nCreated            src/b.c\n", out)
}

func TestCommands_BzrBranchInfo(t *testing.T) {
	out, err := execute(t, &mockApp{}, "bzr", "branch-info")
	require.NoError(t, err)
	assert.Equal(t, "unbound\n", out)

	out, err = execute(t, &mockApp{branchInfo: domain.BranchInfo{Location: "lp:trunk", IsBound: true}}, "bzr", "branch-info")
	require.NoError(t, err)
	assert.Equal(t, "bound to lp:trunk\n", out)
}

func TestCommands_BzrDiff(t *testing.T) {
	var params bazaar.DiffParameters
	var format bazaar.DiffFormatOpt
	mock := &mockApp{
		diffFunc: func(_ context.Context, _ string, p bazaar.DiffParameters, f bazaar.DiffFormatOpt, _ io.Writer) error {
			params = p
			format = f
			return nil
		},
	}

	_, err := execute(t, mock, "-C", "/work", "bzr", "diff", "-B", "a.c")
	require.NoError(t, err)
	assert.Equal(t, "/work", params.WorkingDir)
	assert.Equal(t, []string{"a.c"}, params.Files)
	assert.Equal(t, bazaar.DiffFormatOpt{IgnoreBlankLines: true}, format)
}

func TestCommands_BzrCommit(t *testing.T) {
	var message string
	var req bazaar.Request
	mock := &mockApp{
		commitFunc: func(_ context.Context, _, m string, r bazaar.Request, _ io.Writer) error {
			message = m
			req = r
			return nil
		},
	}

	_, err := execute(t, mock, "bzr", "commit", "-m", "fix", "--fixes", "lp:1", "--local", "a.c")
	require.NoError(t, err)
	assert.Equal(t, "fix", message)
	assert.Equal(t, []string{"lp:1"}, req.Fixes)
	assert.True(t, req.Local)
	assert.Equal(t, []string{"a.c"}, req.Files)
}

func TestCommands_BzrCommit_RequiresMessage(t *testing.T) {
	_, err := execute(t, &mockApp{}, "bzr", "commit", "a.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")
}

func TestCommands_MakeUpdates(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, id string, change app.StepChange)
	}{
		{
			name: "target add",
			args: []string{"make", "target", "add", "install", "-s", "make.2"},
			check: func(t *testing.T, id string, change app.StepChange) {
				assert.Equal(t, "make.2", id)
				assert.Equal(t, []string{"install"}, change.Enable)
			},
		},
		{
			name: "target remove",
			args: []string{"make", "target", "remove", "all"},
			check: func(t *testing.T, _ string, change app.StepChange) {
				assert.Equal(t, []string{"all"}, change.Disable)
			},
		},
		{
			name: "target set without targets clears",
			args: []string{"make", "target", "set"},
			check: func(t *testing.T, _ string, change app.StepChange) {
				assert.NotNil(t, change.Targets)
				assert.Empty(t, change.Targets)
			},
		},
		{
			name: "command resets without argument",
			args: []string{"make", "command"},
			check: func(t *testing.T, _ string, change app.StepChange) {
				require.NotNil(t, change.Command)
				assert.Empty(t, *change.Command)
			},
		},
		{
			name: "args after separator",
			args: []string{"make", "args", "--", "-k -j4"},
			check: func(t *testing.T, _ string, change app.StepChange) {
				require.NotNil(t, change.Arguments)
				assert.Equal(t, "-k -j4", *change.Arguments)
			},
		},
		{
			name: "clean",
			args: []string{"make", "clean", "true"},
			check: func(t *testing.T, _ string, change app.StepChange) {
				require.NotNil(t, change.Clean)
				assert.True(t, *change.Clean)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockApp{
				updateFunc: func(_, id string, change app.StepChange) (makestep.Summary, error) {
					called = true
					tt.check(t, id, change)
					return makestep.Summary{Text: "Make: make all in /work"}, nil
				},
			}

			out, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, "Make: make all in /work\n", out)
		})
	}
}

func TestCommands_MakeClean_InvalidValue(t *testing.T) {
	_, err := execute(t, &mockApp{}, "make", "clean", "maybe")
	require.Error(t, err)
}

func TestCommands_MakeSelect_PassesOutputMode(t *testing.T) {
	var mode string
	mock := &mockApp{
		selectFunc: func(_ context.Context, _, _, outputMode string) (makestep.Summary, error) {
			mode = outputMode
			return makestep.Summary{}, domain.ErrNotInteractive
		},
	}

	_, err := execute(t, mock, "make", "select", "--output", "plain")
	require.Error(t, err)
	assert.Equal(t, "plain", mode)
}

type recordingFormatter struct {
	json  bool
	calls int
}

func (r *recordingFormatter) SetJSON(enable bool) {
	r.json = enable
	r.calls++
}

func TestCommands_JSONFlag(t *testing.T) {
	rec := &recordingFormatter{}
	cli := commands.New(&mockApp{})
	cli.SetLogFormatter(rec)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--json", "version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, rec.json)
}

func TestCommands_WithoutJSONFlagKeepsFormat(t *testing.T) {
	rec := &recordingFormatter{json: true}
	cli := commands.New(&mockApp{})
	cli.SetLogFormatter(rec)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Zero(t, rec.calls)
	assert.True(t, rec.json)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
