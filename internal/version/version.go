package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgHiCyan)
	versionMinorColor = color.New(color.FgHiMagenta)
	versionPatchColor = color.New(color.FgHiYellow)
)

// Version is the human-facing version string for the ethlint CLI.
var Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("2") + "." + versionPatchColor.Sprint("0") + "-dev"

// Build metadata populated by the linker via -ldflags.
var (
	GitCommit  = "unknown"
	GitMessage = "unknown"
	BuildDate  = "unknown"
)
