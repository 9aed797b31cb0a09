// Package fs expands CLI path arguments into a list of HLSL source files
// (spec.md §4.8, ambient stack, CLI-only). It is a deliberate trim of the
// teacher's virtual-filesystem abstraction (idl.FileSystem,
// FileSystemMulti, fileSystemLocal, the lazy-body idl.File wrapper in
// file.go/ioadaptor.go) down to what a single-file shader translator
// needs: no multi-root import search, no virtual backends, no Write
// side — just local-disk directory expansion with an extension filter,
// matching the teacher's FileFilter/knownExts shape. Source bodies
// themselves are loaded by internal/source.FromFile once a caller has a
// concrete path; this package only discovers paths.
package fs

import (
	"os"
	"path/filepath"
	"sort"
)

// knownExts lists the file extensions this translator treats as HLSL
// source, the Go stand-in for the teacher's knownExts map. ".fxh" and
// ".hlsli" are the conventional include-header spellings; the parser
// itself never opens an #include target (spec.md §1 Non-goals), but a
// directory expansion should still pick them up as top-level translation
// units in their own right.
var knownExts = map[string]bool{
	".hlsl":  true,
	".fx":    true,
	".fxh":   true,
	".hlsli": true,
}

// FileFilter selects which directory entries a directory argument
// expands to, matching the teacher's FileFilter signature minus its
// unused context.Context parameter (this package performs no I/O a
// caller would ever want to cancel).
type FileFilter func(name string) bool

// DefaultFileFilter accepts the conventional HLSL source extensions.
func DefaultFileFilter(name string) bool {
	return knownExts[filepath.Ext(name)]
}

// Discover expands each of roots — a file or a directory — into a sorted,
// deduplicated list of source file paths, using filter to select a
// directory's children. A file argument is always returned as-is
// regardless of extension, mirroring the teacher's single-file Open path
// where an explicit target is honored unconditionally; only directory
// expansion applies filter. Directory expansion is non-recursive, matching
// the teacher's fileSystemLocal.Open directory listing.
func Discover(roots []string, filter FileFilter) ([]string, error) {
	if filter == nil {
		filter = DefaultFileFilter
	}
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !filter(entry.Name()) {
				continue
			}
			add(filepath.Join(root, entry.Name()))
		}
	}

	sort.Strings(out)
	return out, nil
}
