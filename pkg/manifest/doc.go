// Package manifest reads test manifests into a flat list of test records,
// queries them and writes them back out.
//
// A manifest is an INI-style file (see package ini) where every section
// names a test, relative to the manifest's directory, and carries arbitrary
// metadata. Two extensions make manifests composable:
//
//   - [DEFAULT] holds variables shared by the file's later sections and
//     passed down to included manifests.
//   - [include:other.ini] splices the tests of another manifest in at that
//     position, using the include section's data as the nested scope.
//
// Every test gets three reserved keys: name (the section header), path (the
// absolute location of the test) and manifest (the absolute path of the
// declaring file). The variable "here" always holds the directory of the
// manifest being read.
package manifest
