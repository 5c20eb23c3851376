// pkg/inputfile/inputfile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test input loading and failure classification

package inputfile_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/DmarshalTU/safecracker/pkg/errors"
	"github.com/DmarshalTU/safecracker/pkg/inputfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("R50\nL25\n"), 0o644))

	got, err := inputfile.Read(path)

	require.NoError(t, err)
	assert.Equal(t, "R50\nL25\n", got)
}

func TestRead_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := inputfile.Read(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrFileNotFound, errors.GetErrorCode(err))

	hint, ok := errors.GetDetail(err, "hint")
	require.True(t, ok)
	assert.Contains(t, hint, "correct directory")
}

func TestRead_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("R50\n"), 0o000))

	_, err := inputfile.Read(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrFilePermission, errors.GetErrorCode(err))
}
