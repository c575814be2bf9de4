package testutil

import (
	"fmt"
	"strings"
)

// Manifest builds manifest text section by section.
type Manifest struct {
	b strings.Builder
}

// NewManifest starts an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// Section appends a [name] section with key = value lines, given as
// alternating keys and values.
func (m *Manifest) Section(name string, kv ...string) *Manifest {
	fmt.Fprintf(&m.b, "[%s]\n", name)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&m.b, "%s = %s\n", kv[i], kv[i+1])
	}
	m.b.WriteString("\n")
	return m
}

// Default appends a [DEFAULT] section.
func (m *Manifest) Default(kv ...string) *Manifest {
	return m.Section("DEFAULT", kv...)
}

// Include appends an [include:path] section.
func (m *Manifest) Include(path string, kv ...string) *Manifest {
	return m.Section("include:"+path, kv...)
}

// String returns the manifest text.
func (m *Manifest) String() string {
	return m.b.String()
}
