// Package scan finds files left over from the deprecated build
// representation. The scan is advisory: findings are warnings, never
// failures, and the files are never auto-deleted.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Legacy recursively enumerates root for files whose extension is in
// exts and returns their paths relative to root, lexicographically
// sorted so repeated runs over an unchanged tree produce identical
// output.
func Legacy(root string, exts []string) ([]string, error) {
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if extSet[filepath.Ext(path)] {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			found = append(found, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}
