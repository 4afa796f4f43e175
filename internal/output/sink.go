package output

import (
	"fmt"
	"io"
	"strings"
)

// Sink is the presentation surface the orchestrator writes to. Business
// logic never branches on styling: it reports events here and the sink
// chosen at startup decides how they render.
type Sink interface {
	// Info reports run progress.
	Info(msg string, keyvals ...interface{})

	// Warn reports advisory findings (legacy files, cleanup failures).
	Warn(msg string, keyvals ...interface{})

	// Error reports a failure diagnostic.
	Error(msg string, keyvals ...interface{})

	// Command echoes an external command line about to run.
	Command(argv []string)

	// Success reports a completed step on stdout.
	Success(msg string)

	// Artifact reports a produced artifact and its size on stdout.
	Artifact(path string, size int64)

	// Print writes a raw line to stdout.
	Print(line string)
}

// NewSink selects the sink implementation for this invocation. Styled
// output is only used when stdout is a terminal.
func NewSink(styled bool) Sink {
	if styled {
		return &styledSink{}
	}
	return &plainSink{}
}

// styledSink renders through the global charm logger and lipgloss styles.
type styledSink struct{}

func (s *styledSink) Info(msg string, keyvals ...interface{})  { Info(msg, keyvals...) }
func (s *styledSink) Warn(msg string, keyvals ...interface{})  { Warn(msg, keyvals...) }
func (s *styledSink) Error(msg string, keyvals ...interface{}) { Error(msg, keyvals...) }

func (s *styledSink) Command(argv []string) {
	Println(StyleCommand.Render("[CMD]") + " " + strings.Join(argv, " "))
}

func (s *styledSink) Success(msg string) {
	Println(FormatCheckmark(msg))
}

func (s *styledSink) Artifact(path string, size int64) {
	Println(FormatArtifact(path, size))
}

func (s *styledSink) Print(line string) {
	Println(line)
}

// plainSink renders unstyled text. Log events still route through the
// global logger so levels and destinations stay consistent, but command
// echo and summary lines carry no ANSI sequences.
type plainSink struct {
	// out overrides stdout when non-nil (used by tests).
	out io.Writer
}

func (s *plainSink) Info(msg string, keyvals ...interface{})  { Info(msg, keyvals...) }
func (s *plainSink) Warn(msg string, keyvals ...interface{})  { Warn(msg, keyvals...) }
func (s *plainSink) Error(msg string, keyvals ...interface{}) { Error(msg, keyvals...) }

func (s *plainSink) Command(argv []string) {
	s.Print("[CMD] " + strings.Join(argv, " "))
}

func (s *plainSink) Success(msg string) {
	s.Print("* " + msg)
}

func (s *plainSink) Artifact(path string, size int64) {
	s.Print(fmt.Sprintf("  * %s (%d bytes)", path, size))
}

func (s *plainSink) Print(line string) {
	if s.out != nil {
		fmt.Fprintln(s.out, line)
		return
	}
	Println(line)
}
