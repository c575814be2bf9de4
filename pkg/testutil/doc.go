// Package testutil provides utilities for testing the manifest tooling.
//
// Key components:
//   - TestEnvironment: a manifest tree on either an in-memory filesystem or
//     an isolated temp directory, with helpers to add files and read them
//     back
//   - Manifest: a small builder for manifest text
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only when code under test goes
//     through the OS filesystem directly (CLI commands, logging)
//   - Test data is defined inline, not in external files
package testutil
