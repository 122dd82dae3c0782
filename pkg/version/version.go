package version

import (
	"fmt"
	"runtime"
)

// Semantic version components
const (
	Major = 0
	Minor = 1
	Patch = 0
)

// BotName is the human-readable name reported alongside the version
const BotName = "Ethos Bot"

// BuildInfo contains version and build environment details
type BuildInfo struct {
	BotName   string `json:"bot_name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Major     int    `json:"major"`
	Minor     int    `json:"minor"`
	Patch     int    `json:"patch"`
}

// Version returns the bare semantic version, e.g. "0.1.0"
func Version() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// GetVersion returns the version with a "v" prefix, e.g. "v0.1.0"
func GetVersion() string {
	return "v" + Version()
}

// GetVersionString returns the name and version, e.g. "Ethos Bot v0.1.0"
func GetVersionString() string {
	return fmt.Sprintf("%s %s", BotName, GetVersion())
}

// GetFullVersionString includes the Go runtime and platform
func GetFullVersionString() string {
	return fmt.Sprintf("%s (%s, %s/%s)", GetVersionString(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// GetBuildInfo returns the structured build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		BotName:   BotName,
		Version:   Version(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Major:     Major,
		Minor:     Minor,
		Patch:     Patch,
	}
}
