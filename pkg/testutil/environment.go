// pkg/testutil/environment.go
// DEPENDENCIES: filesystem
// PURPOSE: Orchestrate manifest trees on a memory or temp-dir filesystem

package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a directory tree to read manifests from.
type TestEnvironment struct {
	Root string
	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.Root = "/suite"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", env.Root, err)
	}
	return env
}

// Path returns the absolute path of rel inside the environment.
func (e *TestEnvironment) Path(rel ...string) string {
	return filepath.Join(append([]string{e.Root}, rel...)...)
}

// WriteFile writes content to rel, creating parent directories, and
// returns the absolute path.
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()

	path := e.Path(rel)
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// WriteFiles writes every rel -> content pair, in sorted order.
func (e *TestEnvironment) WriteFiles(files map[string]string) {
	e.t.Helper()

	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.WriteFile(k, files[k])
	}
}

// ReadFile returns the content of rel, failing the test if it is missing.
func (e *TestEnvironment) ReadFile(rel string) string {
	e.t.Helper()

	data, err := e.FS.ReadFile(e.Path(rel))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether rel exists in the environment.
func (e *TestEnvironment) Exists(rel string) bool {
	return filesystem.Exists(e.FS, e.Path(rel))
}
