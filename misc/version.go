// Package misc keeps program identification helpers.
package misc

import (
	"runtime/debug"
)

const appName = "cssb"

var (
	version = "dev"
	gitHash = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) > 0 {
			gitHash = s.Value
		}
	}
}

// GetAppName returns program name.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision program was built from.
func GetGitHash() string {
	return gitHash
}
