package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manvlang/stdbuild/internal/testutil"
)

var legacyExts = []string{".s", ".nasm"}

func TestLegacyFindsNestedFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "core/old.s", "")
	testutil.WriteFile(t, root, "memory/deep/nested/gc.nasm", "")
	testutil.WriteFile(t, root, "core/core.asm", "")
	testutil.WriteFile(t, root, "io/io.asm", "")

	found, err := Legacy(root, legacyExts)
	require.NoError(t, err)

	assert.Equal(t, []string{"core/old.s", "memory/deep/nested/gc.nasm"}, found)
}

func TestLegacyNeverFlagsRegistrySources(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "core/core.asm", "")
	testutil.WriteFile(t, root, "math/math.asm", "")

	found, err := Legacy(root, legacyExts)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLegacyStableOrder(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "z/last.s", "")
	testutil.WriteFile(t, root, "a/first.s", "")
	testutil.WriteFile(t, root, "m/mid.nasm", "")

	found, err := Legacy(root, legacyExts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/first.s", "m/mid.nasm", "z/last.s"}, found)
}

func TestLegacyIdempotent(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "core/old.s", "")
	testutil.WriteFile(t, root, "io/legacy.nasm", "")

	first, err := Legacy(root, legacyExts)
	require.NoError(t, err)
	second, err := Legacy(root, legacyExts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLegacyEmptyTree(t *testing.T) {
	found, err := Legacy(t.TempDir(), legacyExts)
	require.NoError(t, err)
	assert.Empty(t, found)
}
