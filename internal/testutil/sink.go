package testutil

import (
	"fmt"
	"sync"
)

// ArtifactLine records one artifact reported to RecordingSink.
type ArtifactLine struct {
	Path string
	Size int64
}

// RecordingSink is an output.Sink that captures everything written to
// it, so tests can assert on the diagnostics a run produced.
type RecordingSink struct {
	mu sync.Mutex

	Infos     []string
	Warns     []string
	Errors    []string
	Commands  [][]string
	Successes []string
	Artifacts []ArtifactLine
	Lines     []string
}

func (s *RecordingSink) record(dst *[]string, msg string, keyvals ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := msg
	for i := 0; i+1 < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	*dst = append(*dst, line)
}

// Info implements output.Sink.
func (s *RecordingSink) Info(msg string, keyvals ...interface{}) {
	s.record(&s.Infos, msg, keyvals...)
}

// Warn implements output.Sink.
func (s *RecordingSink) Warn(msg string, keyvals ...interface{}) {
	s.record(&s.Warns, msg, keyvals...)
}

// Error implements output.Sink.
func (s *RecordingSink) Error(msg string, keyvals ...interface{}) {
	s.record(&s.Errors, msg, keyvals...)
}

// Command implements output.Sink.
func (s *RecordingSink) Command(argv []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Commands = append(s.Commands, argv)
}

// Success implements output.Sink.
func (s *RecordingSink) Success(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Successes = append(s.Successes, msg)
}

// Artifact implements output.Sink.
func (s *RecordingSink) Artifact(path string, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Artifacts = append(s.Artifacts, ArtifactLine{Path: path, Size: size})
}

// Print implements output.Sink.
func (s *RecordingSink) Print(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lines = append(s.Lines, line)
}
