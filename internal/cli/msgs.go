package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Read, query and copy test manifests"
	MsgQueryShort   = "Print the selected tests as a canonical manifest"
	MsgPathsShort   = "Print the paths of the tests that are not disabled"
	MsgPathsLong    = "Read the manifests and print the path of every test without a \"disabled\" key, one per line."
	MsgListShort    = "List the tests of the manifests"
	MsgListLong     = "Read the manifests and show every test with its path and the manifest that defines it."
	MsgMissingShort = "Report tests whose file does not exist"
	MsgMissingLong  = "Read the manifests and print the path of every test whose file does not exist. Exits with an error if any is missing."
	MsgCopyShort    = "Copy selected tests and their manifests"
	MsgConvertShort = "Build a manifest from directory contents"
	MsgConfigShort  = "Print the effective configuration"
	MsgConfigLong   = "Print the configuration after applying defaults, config files, environment variables and flags, as TOML."
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Result messages
	MsgNoTests          = "No tests found."
	MsgMissingItem      = "%s\n"
	MsgAllPresent       = "All %d tests are present.\n"
	MsgCopyNothing      = "No tests selected, nothing copied."
	MsgCopyDone         = "Copied %d manifest(s) and %d test(s) to %s\n"
	MsgCopySkipped      = "Skipped %s"
	MsgListFooter       = "\n%d tests, %d disabled\n"
	MsgListDisabled     = "disabled"
	MsgTableHeaderName  = "Name"
	MsgTableHeaderPath  = "Path"
	MsgTableHeaderFrom  = "Manifest"
	MsgTableHeaderState = "State"

	// Version output
	MsgVersionFormat = "manifestparser version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrMissingTests = "%d of %d tests are missing"
	MsgErrCopyArgs     = "copy needs a source manifest and a destination (got %d paths)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrict  = "Reject duplicate sections and keys and fail on missing includes"
	MsgFlagConfig  = "Read this configuration file after the default locations"
	MsgFlagPattern = "Glob pattern matched against file names"
	MsgFlagIgnore  = "Top-level directory to leave out (repeatable)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/query-long.txt
	msgQueryLongRaw string
	MsgQueryLong    = strings.TrimSpace(msgQueryLongRaw)

	//go:embed msgs/query-example.txt
	msgQueryExampleRaw string
	MsgQueryExample    = strings.TrimRight(msgQueryExampleRaw, "\n")

	//go:embed msgs/copy-long.txt
	msgCopyLongRaw string
	MsgCopyLong    = strings.TrimSpace(msgCopyLongRaw)

	//go:embed msgs/copy-example.txt
	msgCopyExampleRaw string
	MsgCopyExample    = strings.TrimRight(msgCopyExampleRaw, "\n")

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")
)
