package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manvlang/stdbuild/internal/registry"
)

func TestWriteOrderPreserving(t *testing.T) {
	root := t.TempDir()
	modules := registry.Modules()

	path, err := Write(root, modules)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, len(modules)+1, len(lines))
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, modules, lines[1:])
}

func TestWriteOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	_, err := Write(root, []string{"core/core.asm"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\ncore/core.asm\n", string(data))
}

func TestWriteDeterministic(t *testing.T) {
	root := t.TempDir()
	modules := registry.Modules()

	_, err := Write(root, modules)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)

	_, err = Write(root, modules)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(root, FileName))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
