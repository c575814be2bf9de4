// Package ini reads the INI-flavored manifest format into an ordered list of
// sections.
//
// The dialect is deliberately small: [section] headers, a case-insensitive
// DEFAULT section whose keys become the base layer of every later section,
// key/value pairs split on the first configured separator, whole-line
// comments, and indented continuation lines. Include directives are not
// interpreted here; they are ordinary sections to this package.
package ini
