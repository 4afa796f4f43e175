package toolchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestCheckerAllPresent(t *testing.T) {
	c := &Checker{LookPath: fakeLookPath("nasm", "ar")}

	assert.Empty(t, c.Missing(RequiredTools()))
	assert.NoError(t, c.Check(RequiredTools()))
}

func TestCheckerReportsEveryMiss(t *testing.T) {
	c := &Checker{LookPath: fakeLookPath()}

	missing := c.Missing(RequiredTools())
	assert.Equal(t, []string{"nasm", "ar"}, missing)

	err := c.Check(RequiredTools())
	require.Error(t, err)
	assert.ErrorIs(t, err, sberrors.ErrMissingTool)
	assert.Contains(t, err.Error(), "nasm")
	assert.Contains(t, err.Error(), "ar")
}

func TestCheckerPartialMiss(t *testing.T) {
	c := &Checker{LookPath: fakeLookPath("ar")}

	assert.Equal(t, []string{"nasm"}, c.Missing(RequiredTools()))
}

func TestCheckerNoTools(t *testing.T) {
	c := &Checker{LookPath: fakeLookPath()}

	assert.Empty(t, c.Missing(nil))
	assert.NoError(t, c.Check(nil))
}
