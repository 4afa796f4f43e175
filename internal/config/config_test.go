package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := Resolve(Options{StdlibDir: root})
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "build"), cfg.BuildDir)
	assert.False(t, cfg.Clean)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ValidateOnly)
	assert.False(t, cfg.WriteManifest)
	assert.Equal(t, DefaultLegacyExtensions, cfg.LegacyExtensions)
}

func TestResolveFlags(t *testing.T) {
	root := t.TempDir()

	cfg, err := Resolve(Options{
		StdlibDir: root,
		Clean:     true,
		Verbose:   true,
		Check:     true,
		Manifest:  true,
	})
	require.NoError(t, err)

	assert.True(t, cfg.Clean)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.ValidateOnly)
	assert.True(t, cfg.WriteManifest)
}

func TestResolveManifestRequiresCheck(t *testing.T) {
	_, err := Resolve(Options{StdlibDir: t.TempDir(), Manifest: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--manifest requires --check")
}

func TestResolveRelativeRootMadeAbsolute(t *testing.T) {
	root := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(root))

	cfg, err := Resolve(Options{StdlibDir: "."})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Root))
}

func TestResolveReadsConfigFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, ".stdbuild.yaml")
	content := "buildDir: out\nlegacyExtensions:\n  - \".old\"\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := Resolve(Options{StdlibDir: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "out"), cfg.BuildDir)
	assert.Equal(t, []string{".old"}, cfg.LegacyExtensions)
}

func TestResolveMalformedConfigFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, ".stdbuild.yaml")
	require.NoError(t, os.WriteFile(file, []byte("buildDir: [unclosed"), 0o644))

	_, err := Resolve(Options{StdlibDir: root})
	assert.Error(t, err)
}
