package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/testutil"
)

// run executes the root command with an isolated configuration and returns
// what was written to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("MANIFESTPARSER_LOGGING_FILE", "false")
	t.Setenv("MANIFESTPARSER_OUTPUT_COLOR", "never")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func suite(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteFiles(map[string]string{
		"manifest.ini":     "[DEFAULT]\nos = linux\n\n[a.js]\nslow =\n\n[b.js]\ndisabled = bug\n\n[include:sub/manifest.ini]\n",
		"sub/manifest.ini": "[c.js]\nos = mac\n",
		"a.js":             "// a",
		"sub/c.js":         "// c",
	})
	return env
}

func TestQueryCommand(t *testing.T) {
	env := suite(t)
	manifest := env.Path("manifest.ini")

	out, err := run(t, "query", manifest, "--os", "linux", "-slow")

	require.NoError(t, err)
	assert.Equal(t, "[a.js]\nos = linux\nslow = \n\n", out)
}

func TestQueryCommandAll(t *testing.T) {
	env := suite(t)

	out, err := run(t, "query", env.Path("manifest.ini"))

	require.NoError(t, err)
	assert.Equal(t, "[a.js]\nos = linux\nslow = \n\n[b.js]\ndisabled = bug\nos = linux\n\n[sub/c.js]\nos = mac\n\n", out)
}

func TestQueryCommandNoManifests(t *testing.T) {
	out, err := run(t, "query", "-slow")

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestQueryCommandBadArguments(t *testing.T) {
	tests := [][]string{
		{"query", "manifest.ini", "---x"},
		{"query", "manifest.ini", "--os"},
	}
	for _, args := range tests {
		_, err := run(t, args...)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrArgument), "args %v: %v", args, err)
	}
}

func TestQueryCommandMissingManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := run(t, "query", env.Path("nope.ini"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingFile))
}

func TestPathsCommand(t *testing.T) {
	env := suite(t)

	out, err := run(t, "paths", env.Path("manifest.ini"))

	require.NoError(t, err)
	assert.Equal(t, env.Path("a.js")+"\n"+env.Path("sub", "c.js")+"\n", out)
}

func TestListCommand(t *testing.T) {
	env := suite(t)

	out, err := run(t, "list", env.Path("manifest.ini"))

	require.NoError(t, err)
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, filepath.Join("sub", "c.js"))
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "3 tests, 1 disabled")
}

func TestMissingCommand(t *testing.T) {
	env := suite(t)

	out, err := run(t, "missing", env.Path("manifest.ini"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingFile))
	assert.Equal(t, env.Path("b.js")+"\n", out)

	env.WriteFile("b.js", "// b")
	out, err = run(t, "missing", env.Path("manifest.ini"))
	require.NoError(t, err)
	assert.Equal(t, "All 3 tests are present.\n", out)
}

func TestCopyCommand(t *testing.T) {
	env := suite(t)
	dst := env.Path("dst")

	out, err := run(t, "copy", env.Path("manifest.ini"), dst, "--os=mac")

	require.NoError(t, err)
	assert.Contains(t, out, "Copied 2 manifest(s) and 1 test(s)")
	assert.DirExists(t, dst)
	assert.Equal(t, "// c", env.ReadFile("dst/sub/c.js"))
	assert.Equal(t, env.ReadFile("manifest.ini"), env.ReadFile("dst/manifest.ini"))
}

func TestCopyCommandNeedsTwoPaths(t *testing.T) {
	env := suite(t)

	_, err := run(t, "copy", env.Path("manifest.ini"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArgument))
}

func TestConvertCommand(t *testing.T) {
	env := suite(t)

	out, err := run(t, "convert", env.Root, "--pattern", "*.js")

	require.NoError(t, err)
	assert.Equal(t, "[a.js]\n[sub/c.js]\n", out)

	out, err = run(t, "convert", env.Root, "-p", "*.js", "-i", "sub")
	require.NoError(t, err)
	assert.Equal(t, "[a.js]\n", out)
}

func TestStrictFlag(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	path := env.WriteFile("manifest.ini", "[t1]\n\n[include:nope.ini]\n\n[t2]\n")

	_, err := run(t, "paths", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingFile))

	out, err := run(t, "paths", "--strict=false", path)
	require.NoError(t, err)
	assert.Equal(t, env.Path("t1")+"\n"+env.Path("t2")+"\n", out)
}

func TestConfigCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	cfgPath := env.WriteFile("custom.toml", "[parser]\ncomments = \"#\"\n")

	out, err := run(t, "config", "--config", cfgPath)

	require.NoError(t, err)
	assert.Contains(t, out, "[parser]")
	assert.Regexp(t, `comments = ['"]#['"]`, out)
	assert.Regexp(t, `color = ['"]never['"]`, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "manifestparser version dev")
}
