package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Rename files by replacing a substring in their names"

	// Usage banner printed when arguments are missing
	MsgUsageBanner = "%s version %s\nA utility that will rename file parts that match the <file_pattern>.\nUsage: %s <find> <replace> <file_pattern>\n"

	// Version output
	MsgVersionTemplate = "frep version %s\n  commit: %s\n  built:  %s\n"

	// Error messages, styled one line at a time
	MsgErrInvalidPattern = "Invalid pattern %s: %v"
	MsgErrRenaming       = "Error during renaming: %v"
	MsgErrGeneric        = "Error: %v"
	MsgErrUsageHint      = "Run '%s --help' for usage."
	MsgErrArgCount       = "expected <find> <replace> <file_pattern>, got %d argument(s)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable colored diagnostics"
)

// Long messages loaded from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
