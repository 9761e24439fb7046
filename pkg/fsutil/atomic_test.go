package fsutil

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renameFailFs injects a rename failure to simulate a crash between writing
// the temporary file and moving it into place.
type renameFailFs struct {
	afero.Fs
}

var errRenameInjected = errors.New("injected rename failure")

func (f renameFailFs) Rename(oldname, newname string) error {
	return errRenameInjected
}

func TestWriteFileAtomic(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, WriteFileAtomic(fsys, "/boot/loader.conf", []byte("default a\n"), 0644))
	data, err := afero.ReadFile(fsys, "/boot/loader.conf")
	require.NoError(t, err)
	assert.Equal(t, "default a\n", string(data))

	// Overwrite replaces the full content.
	require.NoError(t, WriteFileAtomic(fsys, "/boot/loader.conf", []byte("default b\n"), 0644))
	data, err = afero.ReadFile(fsys, "/boot/loader.conf")
	require.NoError(t, err)
	assert.Equal(t, "default b\n", string(data))

	// No temporary file left behind.
	exists, err := afero.Exists(fsys, "/boot/loader.conf.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteFileAtomicFailureKeepsOriginal(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/boot/loader.conf", []byte("default old\n"), 0644))

	err := WriteFileAtomic(renameFailFs{fsys}, "/boot/loader.conf", []byte("default new\n"), 0644)
	assert.ErrorIs(t, err, errRenameInjected)

	data, err := afero.ReadFile(fsys, "/boot/loader.conf")
	require.NoError(t, err)
	assert.Equal(t, "default old\n", string(data), "failed write must leave prior content intact")

	exists, err := afero.Exists(fsys, "/boot/loader.conf.tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temporary file must be cleaned up after a failure")
}

func TestWriteFileAtomicReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := WriteFileAtomic(fsys, "/boot/loader.conf", []byte("x\n"), 0644)
	assert.Error(t, err)
}
