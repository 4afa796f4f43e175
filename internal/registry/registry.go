// Package registry declares the module collections of the ManV standard
// library. The registry is pure data: an ordered, compiled-in list of
// source paths grouped into the collections that become static archives.
package registry

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceExt is the extension of registered module sources.
const SourceExt = ".asm"

// ObjectExt is the extension of compiled object files.
const ObjectExt = ".o"

// ArchiveExt is the extension of static archives.
const ArchiveExt = ".a"

// Collection is a named, ordered group of module sources that are
// compiled together into one static archive. Order is the compile and
// archive order and must be preserved for reproducible archives.
type Collection struct {
	// Name is the archive base name, e.g. "libcore".
	Name string

	// Sources are module paths relative to the stdlib root, in
	// declared order. Paths are unique within a collection.
	Sources []string
}

// ArchiveName returns the archive file name for the collection.
func (c Collection) ArchiveName() string {
	return c.Name + ArchiveExt
}

// Core holds the core type modules archived into libcore.a.
var Core = Collection{
	Name: "libcore",
	Sources: []string{
		"core/core.asm",
		"core/str.asm",
		"core/int.asm",
		"core/float.asm",
		"core/array.asm",
		"core/bytes.asm",
	},
}

// Std holds the standard library modules archived into libstd.a.
var Std = Collection{
	Name: "libstd",
	Sources: []string{
		"io/io.asm",
		"math/math.asm",
		"memory/gc.asm",
		"memory/arena.asm",
		"memory/mem.asm",
	},
}

// Collections returns all collections in build order.
func Collections() []Collection {
	return []Collection{Core, Std}
}

// Modules returns the flat module list in registry order. This is the
// order validation mode checks and the manifest lists.
func Modules() []string {
	var modules []string
	for _, c := range Collections() {
		modules = append(modules, c.Sources...)
	}
	return modules
}

// ObjectName maps a source path to its object file name. Path
// separators are flattened into underscores so every object of a
// collection lands in a single build directory without collisions.
func ObjectName(source string) string {
	flat := strings.ReplaceAll(filepath.ToSlash(source), "/", "_")
	return strings.TrimSuffix(flat, SourceExt) + ObjectExt
}

// ObjectPair maps a module source path to its object output path.
type ObjectPair struct {
	// Source is the absolute path of the module source file.
	Source string

	// Object is the absolute path of the object file to produce.
	Object string
}

// BuildTarget is the compiled-mode work unit derived from a Collection:
// the archive to produce and the ordered source-to-object mapping.
type BuildTarget struct {
	// Name is the collection name.
	Name string

	// Archive is the absolute path of the archive to produce.
	Archive string

	// Pairs are the source-to-object mappings in declared order.
	Pairs []ObjectPair
}

// Objects returns the ordered object paths of the target.
func (t BuildTarget) Objects() []string {
	objects := make([]string, len(t.Pairs))
	for i, p := range t.Pairs {
		objects[i] = p.Object
	}
	return objects
}

// NewBuildTarget derives the build target for a collection, rooting
// sources at root and objects at buildDir. It rejects duplicate sources
// and object-name collisions within the collection.
func NewBuildTarget(c Collection, root, buildDir string) (BuildTarget, error) {
	target := BuildTarget{
		Name:    c.Name,
		Archive: filepath.Join(root, c.ArchiveName()),
		Pairs:   make([]ObjectPair, 0, len(c.Sources)),
	}

	seenSource := make(map[string]bool, len(c.Sources))
	seenObject := make(map[string]string, len(c.Sources))

	for _, source := range c.Sources {
		if seenSource[source] {
			return BuildTarget{}, fmt.Errorf("collection %s: duplicate source %s", c.Name, source)
		}
		seenSource[source] = true

		obj := ObjectName(source)
		if prev, ok := seenObject[obj]; ok {
			return BuildTarget{}, fmt.Errorf("collection %s: sources %s and %s map to the same object %s", c.Name, prev, source, obj)
		}
		seenObject[obj] = source

		target.Pairs = append(target.Pairs, ObjectPair{
			Source: filepath.Join(root, filepath.FromSlash(source)),
			Object: filepath.Join(buildDir, obj),
		})
	}

	return target, nil
}

// BuildTargets derives build targets for all collections in build order.
func BuildTargets(root, buildDir string) ([]BuildTarget, error) {
	collections := Collections()
	targets := make([]BuildTarget, 0, len(collections))
	for _, c := range collections {
		t, err := NewBuildTarget(c, root, buildDir)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
