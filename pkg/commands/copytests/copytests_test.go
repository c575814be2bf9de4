package copytests_test

import (
	"testing"

	"github.com/arthur-debert/manifestdestiny/pkg/commands/copytests"
	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/testutil"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// suite builds src/ with a root manifest including an intermediate
// manifest that only includes a leaf manifest.
func suite(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFiles(map[string]string{
		"src/manifest.ini":           "[root.js]\nos = linux\n\n[include:mid/manifest.ini]\n\n[gone.js]\nos = linux\n",
		"src/root.js":                "// root",
		"src/mid/manifest.ini":       "[include:leaf/manifest.ini]\n",
		"src/mid/leaf/manifest.ini":  "[leaf.js]\nos = linux\n\n[other.js]\nos = mac\n\n[/abs/elsewhere.js]\nos = linux\n",
		"src/mid/leaf/leaf.js":       "// leaf",
		"src/mid/leaf/other.js":      "// other",
		"src/unrelated/unrelated.js": "// not listed",
	})
	return env
}

func options(env *testutil.TestEnvironment, to string) copytests.CopyOptions {
	opts := manifest.DefaultOptions()
	opts.FS = env.FS
	return copytests.CopyOptions{
		From:   env.Path("src", "manifest.ini"),
		To:     to,
		Parser: opts,
	}
}

func TestCopyToDirectory(t *testing.T) {
	env := suite(t)
	require.NoError(t, env.FS.MkdirAll(env.Path("dst"), 0755))

	opts := options(env, env.Path("dst"))
	opts.Constraints = types.Constraints{{Key: "os", Value: "linux"}}
	result, err := copytests.Copy(opts)

	require.NoError(t, err)
	assert.Equal(t, env.Path("dst", "manifest.ini"), result.Destination)
	assert.Equal(t, []string{"manifest.ini", "mid/leaf/manifest.ini", "mid/manifest.ini"}, result.Manifests)
	assert.Equal(t, []string{"root.js", "mid/leaf/leaf.js"}, result.Tests)
	assert.Equal(t, []string{"/abs/elsewhere.js", env.Path("src", "gone.js")}, result.Skipped)

	assert.Equal(t, env.ReadFile("src/manifest.ini"), env.ReadFile("dst/manifest.ini"))
	assert.Equal(t, "[include:leaf/manifest.ini]\n", env.ReadFile("dst/mid/manifest.ini"))
	assert.Equal(t, "// leaf", env.ReadFile("dst/mid/leaf/leaf.js"))
	assert.False(t, env.Exists("dst/mid/leaf/other.js"), "unselected test")
	assert.False(t, env.Exists("dst/unrelated/unrelated.js"))
}

func TestCopyToNewDirectory(t *testing.T) {
	env := suite(t)

	opts := options(env, env.Path("new", "dir"))
	opts.Constraints = types.Constraints{{Key: "os", Value: "mac"}}
	result, err := copytests.Copy(opts)

	require.NoError(t, err)
	assert.True(t, filesystem.IsDir(env.FS, env.Path("new", "dir")))
	assert.Equal(t, env.Path("new", "dir", "manifest.ini"), result.Destination)
	assert.Equal(t, []string{"manifest.ini", "mid/leaf/manifest.ini", "mid/manifest.ini"}, result.Manifests)
	assert.Equal(t, env.ReadFile("src/manifest.ini"), env.ReadFile("new/dir/manifest.ini"))
	assert.Equal(t, "// other", env.ReadFile("new/dir/mid/leaf/other.js"))
	assert.False(t, env.Exists("new/dir/root.js"))
	assert.False(t, env.Exists("new/mid"), "nothing lands next to the new directory")
}

func TestCopySharedIncludeKeepsEveryIncluder(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFiles(map[string]string{
		"src/manifest.ini":        "[include:left/manifest.ini]\n[include:right/manifest.ini]\n",
		"src/left/manifest.ini":   "[include:../shared/manifest.ini]\n",
		"src/right/manifest.ini":  "[include:../shared/manifest.ini]\n",
		"src/shared/manifest.ini": "[shared.js]\n",
		"src/shared/shared.js":    "// shared",
	})

	result, err := copytests.Copy(options(env, env.Path("dst")))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"left/manifest.ini",
		"manifest.ini",
		"right/manifest.ini",
		"shared/manifest.ini",
	}, result.Manifests)

	opts := manifest.DefaultOptions()
	opts.FS = env.FS
	opts.Strict = true
	copied, err := manifest.NewFromFiles(opts, result.Destination)
	require.NoError(t, err)
	assert.Equal(t, 2, copied.Len())
}

func TestCopyOverwritesExistingFile(t *testing.T) {
	env := suite(t)
	existing := env.WriteFile("dst/existing.ini", "old content")

	_, err := copytests.Copy(options(env, existing))

	require.NoError(t, err)
	assert.Equal(t, env.ReadFile("src/manifest.ini"), env.ReadFile("dst/existing.ini"))
	assert.Equal(t, "// root", env.ReadFile("dst/root.js"))
}

func TestCopyNothingSelected(t *testing.T) {
	env := suite(t)
	require.NoError(t, env.FS.MkdirAll(env.Path("dst"), 0755))

	opts := options(env, env.Path("dst"))
	opts.Tags = []string{"no-such-tag"}
	result, err := copytests.Copy(opts)

	require.NoError(t, err)
	assert.Empty(t, result.Manifests)
	assert.Empty(t, result.Tests)
	assert.False(t, env.Exists("dst/manifest.ini"))
}

func TestCopyMissingSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := copytests.Copy(options(env, env.Path("dst")))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingFile))
}

func TestCopyDestinationParentIsFile(t *testing.T) {
	env := suite(t)
	env.WriteFile("blocker", "")

	_, err := copytests.Copy(options(env, env.Path("blocker", "out")))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
