package filesystem_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs   types.FS
	root string
} {
	return map[string]struct {
		fs   types.FS
		root string
	}{
		"os":     {fs: filesystem.NewOS(), root: t.TempDir()},
		"memory": {fs: filesystem.NewMemory(), root: "/work"},
	}
}

func TestFSRoundTrip(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fsys := impl.fs
			dir := filepath.Join(impl.root, "sub")
			file := filepath.Join(dir, "manifest.ini")

			require.NoError(t, fsys.MkdirAll(dir, 0755))
			require.NoError(t, fsys.WriteFile(file, []byte("[test]\n"), 0644))

			data, err := fsys.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "[test]\n", string(data))

			rc, err := fsys.Open(file)
			require.NoError(t, err)
			streamed, err := io.ReadAll(rc)
			require.NoError(t, rc.Close())
			require.NoError(t, err)
			assert.Equal(t, data, streamed)

			assert.True(t, filesystem.Exists(fsys, file))
			assert.True(t, filesystem.IsDir(fsys, dir))
			assert.False(t, filesystem.IsDir(fsys, file))
			assert.False(t, filesystem.Exists(fsys, filepath.Join(dir, "nope")))

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err, "reading a directory must fail")
		})
	}
}

func TestWalk(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fsys := impl.fs
			for _, rel := range []string{"b.js", "a.js", "sub/c.js", "sub/deeper/d.txt"} {
				p := filepath.Join(impl.root, rel)
				require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0755))
				require.NoError(t, fsys.WriteFile(p, []byte(rel), 0644))
			}

			var seen []string
			err := filesystem.Walk(fsys, impl.root, func(path, rel string) error {
				assert.Equal(t, filepath.Join(impl.root, rel), path)
				seen = append(seen, filepath.ToSlash(rel))
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, []string{"a.js", "b.js", "sub/c.js", "sub/deeper/d.txt"}, seen)
		})
	}
}

func TestCopyFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/test.js", []byte("ok"), 0600))

	require.NoError(t, filesystem.CopyFile(fsys, "/src/test.js", "/dst/nested/test.js"))

	data, err := fsys.ReadFile("/dst/nested/test.js")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	info, err := fsys.Stat("/dst/nested/test.js")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
