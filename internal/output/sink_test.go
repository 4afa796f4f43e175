package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainSinkCommandEcho(t *testing.T) {
	var buf bytes.Buffer
	s := &plainSink{out: &buf}

	s.Command([]string{"nasm", "-f", "elf64", "core/core.asm", "-o", "build/core_core.o"})

	assert.Equal(t, "[CMD] nasm -f elf64 core/core.asm -o build/core_core.o\n", buf.String())
}

func TestPlainSinkSummaryLines(t *testing.T) {
	var buf bytes.Buffer
	s := &plainSink{out: &buf}

	s.Success("build complete")
	s.Artifact("/lib/libcore.a", 2048)

	out := buf.String()
	assert.Contains(t, out, "* build complete")
	assert.Contains(t, out, "/lib/libcore.a (2048 bytes)")
	// Plain output must carry no ANSI escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestNewSinkSelection(t *testing.T) {
	styled := NewSink(true)
	require.IsType(t, &styledSink{}, styled)

	plain := NewSink(false)
	require.IsType(t, &plainSink{}, plain)
}
