package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one path discovered under a template root, relative to that
// root and slash-separated regardless of host OS.
type Entry struct {
	RelPath string
	IsDir   bool
	Mode    os.FileMode
}

// DefaultIgnores lists the path fragments excluded from every walk: the
// per-variant base manifest (handled separately), editor litter, and any
// dependency tree accidentally committed alongside a template.
func DefaultIgnores() []string {
	return []string{"_package.json", ".DS_Store", "node_modules"}
}

// Walk lists every directory and file under root in a deterministic
// order, parents before children. Any entry whose relative path contains
// one of the ignore fragments is skipped; skipping a directory prunes its
// whole subtree. The traversal keeps its own queue of pending directories
// instead of recursing, so template depth never touches the call stack.
func Walk(root string, ignores []string) ([]Entry, error) {
	var out []Entry

	queue := []string{""}
	for len(queue) > 0 {
		rel := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("reading template directory: %w", err)
		}
		for _, e := range entries {
			childRel := e.Name()
			if rel != "" {
				childRel = rel + "/" + e.Name()
			}
			if ignored(childRel, ignores) {
				continue
			}
			info, err := e.Info()
			if err != nil {
				return nil, fmt.Errorf("inspecting template entry %s: %w", childRel, err)
			}
			out = append(out, Entry{RelPath: childRel, IsDir: e.IsDir(), Mode: info.Mode()})
			if e.IsDir() {
				queue = append(queue, childRel)
			}
		}
	}
	return out, nil
}

func ignored(rel string, ignores []string) bool {
	for _, frag := range ignores {
		if frag != "" && strings.Contains(rel, frag) {
			return true
		}
	}
	return false
}
