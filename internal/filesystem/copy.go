package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// CopyTree copies the tree rooted at dir inside src (typically an embed.FS)
// into dst, overwriting existing files. Files for which skip returns true are
// left out. It returns the destination paths written, in walk order.
func CopyTree(fsys FileSystem, src fs.FS, dir, dst string, skip func(name string) bool) ([]string, error) {
	var written []string

	err := fs.WalkDir(src, dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel := p
		if dir != "." {
			rel = strings.TrimPrefix(p, dir)
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))

		if d.IsDir() {
			return fsys.MkdirAll(target, 0755)
		}

		if skip != nil && skip(path.Base(p)) {
			return nil
		}

		data, err := fs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		if err := fsys.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		written = append(written, target)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return written, nil
}
