// Package filesystem provides filesystem implementations for the manifest
// tooling.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one used for in-memory
// tests, plus a Walk helper that works over any types.FS.
package filesystem
