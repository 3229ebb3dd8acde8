package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcsmake/internal/adapters/settings"
	"go.trai.ch/vcsmake/internal/core/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	root := t.TempDir()
	store := settings.NewStore()

	step := domain.NewMakeStep("make.1", "all", []string{"all", "install"})
	step.SetBuildTarget("install", true)
	step.SetUserArguments("-j4")
	step.SetClean(true)

	require.NoError(t, store.Save(root, step.ID(), step.ToMap()))

	values, err := store.Load(root, step.ID())
	require.NoError(t, err)

	restored := domain.NewMakeStep("make.1", "", nil)
	restored.FromMap(values)

	assert.Equal(t, []string{"all", "install"}, restored.BuildTargets())
	assert.Equal(t, "-j4", restored.UserArguments())
	assert.Empty(t, restored.MakeCommand())
	assert.True(t, restored.IsClean())
}

func TestStore_LoadMissing(t *testing.T) {
	values, err := settings.NewStore().Load(t.TempDir(), "make.1")
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestStore_LoadCorrupt(t *testing.T) {
	root := t.TempDir()
	path := settings.Path(root, "make.1")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	_, err := settings.NewStore().Load(root, "make.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSettingsUnmarshalFailed.Error())
}

func TestStore_SaveCreateFailure(t *testing.T) {
	root := t.TempDir()
	// A file where the state directory should be blocks MkdirAll.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.StateDirName), nil, domain.FilePerm))

	err := settings.NewStore().Save(root, "make.1", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSettingsCreateFailed.Error())
}

func TestPath(t *testing.T) {
	a := settings.Path("/src", "make.1")
	b := settings.Path("/src", "make.2")

	assert.Equal(t, filepath.Join("/src", ".vcsmake", "steps"), filepath.Dir(a))
	assert.Equal(t, ".json", filepath.Ext(a))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, settings.Path("/src", "make.1"))
}
