// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// WriteFile creates a file with the given content in the specified
// directory, creating parent directories as needed, and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// Invocation records one external tool run observed by FakeRunner.
type Invocation struct {
	Name string
	Args []string
}

// Argv returns the full command line of the invocation.
func (i Invocation) Argv() []string {
	return append([]string{i.Name}, i.Args...)
}

// FakeRunner is a toolchain.Runner that records invocations instead of
// executing tools. By default it simulates the real tools well enough
// for pipeline tests: "nasm" copies the source to the object path and
// "ar" concatenates the objects into the archive. Fail makes a specific
// tool return the given error instead.
type FakeRunner struct {
	mu sync.Mutex

	// Invocations are the runs observed, in order.
	Invocations []Invocation

	// Fail maps a tool name to the error its next runs return.
	Fail map[string]error
}

// Run implements toolchain.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.mu.Lock()
	f.Invocations = append(f.Invocations, Invocation{Name: name, Args: args})
	failErr := f.Fail[name]
	f.mu.Unlock()

	if failErr != nil {
		return failErr
	}

	switch name {
	case "nasm":
		// nasm -f <format> <source> -o <object>
		source, object := args[2], args[4]
		data, err := os.ReadFile(source)
		if err != nil {
			return err
		}
		return os.WriteFile(object, append([]byte("obj:"), data...), 0o644)
	case "ar":
		// ar rcs <archive> <object>...
		archive := args[1]
		var b strings.Builder
		b.WriteString("!<arch>\n")
		for _, object := range args[2:] {
			data, err := os.ReadFile(object)
			if err != nil {
				return err
			}
			b.Write(data)
		}
		return os.WriteFile(archive, []byte(b.String()), 0o644)
	}
	return nil
}

// Calls returns how many times the named tool was invoked.
func (f *FakeRunner) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, inv := range f.Invocations {
		if inv.Name == name {
			n++
		}
	}
	return n
}
