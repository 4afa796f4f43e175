// Package validate implements validation mode: the flat existence check
// over the full module registry. Unlike the compiled-mode pipeline it
// is diagnostics-complete, not fail-fast: every module is checked and
// all misses are reported together, since validation has no destructive
// side effect to protect against.
package validate

import (
	"os"
	"path/filepath"
)

// Entry records the existence check of one declared module.
type Entry struct {
	Module string
	Exists bool
}

// Report accumulates existence checks for every declared module, in
// registry order.
type Report struct {
	Entries []Entry
}

// OK reports whether every declared module exists.
func (r *Report) OK() bool {
	for _, e := range r.Entries {
		if !e.Exists {
			return false
		}
	}
	return true
}

// Missing returns the module paths that do not exist, in registry order.
func (r *Report) Missing() []string {
	var missing []string
	for _, e := range r.Entries {
		if !e.Exists {
			missing = append(missing, e.Module)
		}
	}
	return missing
}

// Check stats every module path under root independently and returns
// the full report.
func Check(root string, modules []string) *Report {
	report := &Report{Entries: make([]Entry, 0, len(modules))}
	for _, m := range modules {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(m)))
		report.Entries = append(report.Entries, Entry{
			Module: m,
			Exists: err == nil,
		})
	}
	return report
}
