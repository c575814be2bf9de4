package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// Exists reports whether name exists on fsys.
func Exists(fsys types.FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsDir reports whether name exists on fsys and is a directory.
func IsDir(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}

// WalkFunc is called for every regular file found by Walk. rel is the path
// of the file relative to the walk root.
type WalkFunc func(path, rel string) error

// Walk visits every regular file below root in lexical order.
func Walk(fsys types.FS, root string, fn WalkFunc) error {
	return walk(fsys, root, "", fn)
}

func walk(fsys types.FS, dir, rel string, fn WalkFunc) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		entryRel := filepath.Join(rel, entry.Name())
		if entry.IsDir() {
			if err := walk(fsys, path, entryRel, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(path, entryRel); err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies src to dst on fsys, creating dst's parent directory.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return fsys.WriteFile(dst, data, info.Mode().Perm())
}
