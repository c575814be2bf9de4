// Package convert turns directory trees into manifest text.
package convert

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// ConvertOptions defines the options for the Convert command.
type ConvertOptions struct {
	// Directories are walked recursively. Each must exist.
	Directories []string
	// Pattern is a glob matched against file base names. Empty keeps all.
	Pattern string
	// Ignore lists top-level subdirectories to leave out.
	Ignore []string
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
}

// Convert lists the files below the directories, relative to the directory
// they were found in, as one "[path]" section header per line.
func Convert(opts ConvertOptions) (string, error) {
	log := logging.GetLogger("commands.convert")
	log.Debug().Strs("directories", opts.Directories).Str("pattern", opts.Pattern).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if opts.Pattern != "" {
		if _, err := filepath.Match(opts.Pattern, ""); err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", opts.Pattern)
		}
	}

	var missing []string
	for _, dir := range opts.Directories {
		if !filesystem.Exists(fsys, dir) {
			missing = append(missing, dir)
		} else if !filesystem.IsDir(fsys, dir) {
			return "", errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir).WithDetail("path", dir)
		}
	}
	if len(missing) > 0 {
		return "", errors.MissingFiles(missing...)
	}

	ignored := make(map[string]bool, len(opts.Ignore))
	for _, dir := range opts.Ignore {
		ignored[dir] = true
	}

	var files []string
	for _, dir := range opts.Directories {
		err := filesystem.Walk(fsys, dir, func(path, rel string) error {
			rel = filepath.ToSlash(rel)
			if first, _, nested := strings.Cut(rel, "/"); nested && ignored[first] {
				return nil
			}
			if opts.Pattern != "" {
				if ok, _ := filepath.Match(opts.Pattern, filepath.Base(rel)); !ok {
					return nil
				}
			}
			files = append(files, rel)
			return nil
		})
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", dir)
		}
	}

	sort.Strings(files)
	lines := make([]string, len(files))
	for i, f := range files {
		lines[i] = "[" + f + "]"
	}

	log.Info().Int("files", len(files)).Msg("Command finished")
	return strings.Join(lines, "\n"), nil
}
