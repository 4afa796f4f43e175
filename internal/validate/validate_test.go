package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manvlang/stdbuild/internal/registry"
	"github.com/manvlang/stdbuild/internal/testutil"
)

func writeModules(t *testing.T, root string, modules []string) {
	t.Helper()
	for _, m := range modules {
		testutil.WriteFile(t, root, m, "; "+m+"\n")
	}
}

func TestCheckAllPresent(t *testing.T) {
	root := t.TempDir()
	modules := registry.Modules()
	writeModules(t, root, modules)

	report := Check(root, modules)

	assert.True(t, report.OK())
	assert.Empty(t, report.Missing())
	require.Len(t, report.Entries, len(modules))
	for i, e := range report.Entries {
		assert.Equal(t, modules[i], e.Module, "registry order must be preserved")
	}
}

func TestCheckReportsExactMissingSet(t *testing.T) {
	root := t.TempDir()
	modules := []string{"core/core.asm", "io/io.asm", "math/math.asm"}
	writeModules(t, root, []string{"core/core.asm"})

	report := Check(root, modules)

	assert.False(t, report.OK())
	assert.Equal(t, []string{"io/io.asm", "math/math.asm"}, report.Missing())
}

func TestCheckDoesNotStopAtFirstMiss(t *testing.T) {
	root := t.TempDir()
	modules := []string{"a/a.asm", "b/b.asm", "c/c.asm"}

	report := Check(root, modules)

	// Every module is checked even though the very first one is missing.
	require.Len(t, report.Entries, 3)
	assert.Equal(t, modules, report.Missing())
}

func TestCheckEmptyRegistry(t *testing.T) {
	report := Check(t.TempDir(), nil)

	assert.True(t, report.OK())
	assert.Empty(t, report.Missing())
}
