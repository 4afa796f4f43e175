// Package manifest writes the generated module listing.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the manifest file at the stdlib root.
const FileName = "modules.txt"

// Header is the first line of the manifest, identifying it as generated.
const Header = "# Generated by stdbuild; do not edit."

// Write writes the full ordered module registry to the manifest file
// under root, one module path per line. Any existing file at that path
// is overwritten unconditionally. It returns the file's path.
func Write(root string, modules []string) (string, error) {
	path := filepath.Join(root, FileName)

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, m := range modules {
		b.WriteString(m)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}
