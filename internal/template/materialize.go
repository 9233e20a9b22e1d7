package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdennie/create-rx-app/internal/platform"
)

// binaryExts are copied byte for byte; everything else is treated as
// UTF-8 text and passed through the content rules.
var binaryExts = map[string]bool{
	".png": true,
	".jpg": true,
	".jar": true,
	".ico": true,
	".pfx": true,
}

// Materialize copies the tree under srcRoot into dstRoot, renaming each
// destination path through pathRules and substituting contentRules into
// text files. Source permission bits carry over to every directory and
// file. It returns the destination-relative paths of the files written,
// in traversal order.
func Materialize(srcRoot, dstRoot string, ignores []string, pathRules, contentRules *ReplacementSet) ([]string, error) {
	if err := os.MkdirAll(dstRoot, 0o755); err != nil {
		return nil, fmt.Errorf("creating destination directory: %w", err)
	}

	entries, err := Walk(srcRoot, ignores)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		destRel := pathRules.Apply(e.RelPath)
		dst := filepath.Join(dstRoot, filepath.FromSlash(destRel))

		if e.IsDir {
			if err := os.MkdirAll(dst, e.Mode.Perm()); err != nil {
				return nil, fmt.Errorf("creating directory %s: %w", destRel, err)
			}
			continue
		}

		src := filepath.Join(srcRoot, filepath.FromSlash(e.RelPath))
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("reading template file %s: %w", e.RelPath, err)
		}
		if !binaryPath(e.RelPath) {
			data = []byte(contentRules.Apply(string(data)))
		}
		if err := os.WriteFile(dst, data, e.Mode.Perm()); err != nil {
			return nil, fmt.Errorf("writing %s: %w", destRel, err)
		}
		// WriteFile modes pass through the umask; force the template bits.
		if err := platform.Chmod(dst, e.Mode.Perm()); err != nil {
			return nil, fmt.Errorf("restoring mode on %s: %w", destRel, err)
		}
		files = append(files, destRel)
	}
	return files, nil
}

func binaryPath(rel string) bool {
	return binaryExts[strings.ToLower(filepath.Ext(rel))]
}
