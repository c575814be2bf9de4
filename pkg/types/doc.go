// Package types defines the core types and interfaces used throughout the
// manifest tooling. This includes the FS interface every reader and writer
// goes through, as well as the data structures shared by the section reader,
// the manifest parser and the commands: Vars, Section, Test and Constraints.
package types
