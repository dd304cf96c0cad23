package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAbspath(t *testing.T) {
	workDir := t.TempDir()

	path, err := JoinAbspath(workDir, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "foo", "bar"), path)

	// An absolute part resets what came before it.
	path, err = JoinAbspath("ignored", workDir, "baz")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "baz"), path)
}

func TestParseYAML(t *testing.T) {
	workDir := t.TempDir()
	cfgFile := filepath.Join(workDir, "skel.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`skel:
  templates:
    module: skel
`), 0o644))

	raw, err := ParseYAML(cfgFile)
	require.NoError(t, err)
	require.Contains(t, raw, "skel")

	_, err = ParseYAML(filepath.Join(workDir, "missing.yaml"))
	assert.Error(t, err)
}

func TestIsDirIsRegularFile(t *testing.T) {
	workDir := t.TempDir()
	fileName := filepath.Join(workDir, "file.txt")
	require.NoError(t, os.WriteFile(fileName, []byte("text"), 0o644))

	assert.True(t, IsDir(workDir))
	assert.False(t, IsDir(fileName))
	assert.True(t, IsRegularFile(fileName))
	assert.False(t, IsRegularFile(workDir))
	assert.False(t, IsRegularFile(filepath.Join(workDir, "missing")))
}

func TestCreateDirectory(t *testing.T) {
	workDir := t.TempDir()

	dirName := filepath.Join(workDir, "sub", "dir")
	require.NoError(t, CreateDirectory(dirName, 0o755))
	assert.True(t, IsDir(dirName))

	// Existing directory is not an error.
	require.NoError(t, CreateDirectory(dirName, 0o755))

	fileName := filepath.Join(workDir, "file.txt")
	require.NoError(t, os.WriteFile(fileName, []byte("text"), 0o644))
	assert.Error(t, CreateDirectory(fileName, 0o755))
}
