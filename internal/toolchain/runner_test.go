package toolchain

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
)

func TestExecRunnerMissingTool(t *testing.T) {
	r := &ExecRunner{}

	err := r.Run(context.Background(), "stdbuild-no-such-tool-xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, sberrors.ErrMissingTool)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	r := &ExecRunner{}

	err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, sberrors.ErrToolInvocation)
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Contains(t, err.Error(), "boom")
}

func TestExecRunnerEchoAndStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	var stdout bytes.Buffer
	var echoed [][]string
	r := &ExecRunner{
		Echo:   func(argv []string) { echoed = append(echoed, argv) },
		Stdout: &stdout,
	}

	err := r.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)

	require.Len(t, echoed, 1)
	assert.Equal(t, []string{"sh", "-c", "echo hello"}, echoed[0])
	assert.Equal(t, "hello\n", stdout.String())
}
