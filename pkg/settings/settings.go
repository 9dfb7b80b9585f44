// Package settings provides build metadata and runtime configuration shared
// across the jx CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "jx"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the resolved settings for a single execution: the minimum log
// level, the document path, and whether styling is disabled. The CLI builds
// one from flags and config and hands it down to the UI layer.
type Run struct {
	MinLogLevel int8
	InputPath   string
	NoColor     bool
}

// NewCliParams returns a Run with default CLI parameters: error-level logging
// and colored output.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 2,
		NoColor:     false,
	}
}
