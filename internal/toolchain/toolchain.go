// Package toolchain wraps the external tools the build invokes: the
// nasm assembler and the ar archiver. The orchestration core only sees
// the narrow Runner contract, so it is testable against a fake without
// executing real tools.
package toolchain

import "context"

// External tool names and fixed flags.
const (
	// AssemblerTool is the external assembler executable.
	AssemblerTool = "nasm"

	// ArchiverTool is the external archiver executable.
	ArchiverTool = "ar"

	// ObjectFormat is the object format passed to the assembler.
	ObjectFormat = "elf64"
)

// RequiredTools returns the executables compiled mode depends on.
func RequiredTools() []string {
	return []string{AssemblerTool, ArchiverTool}
}

// Runner runs an external tool to completion. Implementations block
// until the tool exits and return a non-nil error when it cannot be
// started or exits non-zero, with the tool's stderr folded into the
// error message.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) error {
	return f(ctx, name, args...)
}

// Assembler compiles one module source into one object file.
type Assembler struct {
	Runner Runner
}

// Compile invokes the assembler on source, producing object.
func (a *Assembler) Compile(ctx context.Context, source, object string) error {
	return a.Runner.Run(ctx, AssemblerTool, "-f", ObjectFormat, source, "-o", object)
}

// Archiver bundles object files into one static archive.
type Archiver struct {
	Runner Runner
}

// Archive invokes the archiver once with the full ordered object list.
func (a *Archiver) Archive(ctx context.Context, archive string, objects []string) error {
	args := append([]string{"rcs", archive}, objects...)
	return a.Runner.Run(ctx, ArchiverTool, args...)
}
