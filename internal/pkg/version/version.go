// Package version exposes build metadata injected at compile time via
// linker flags, enriched with runtime environment information.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

const unknown = "unknown"

// These variables are containers for -ldflags injection; read them through
// Get() rather than directly.
var (
	appVersion = ""
	gitCommit  = ""
	buildDate  = ""
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	info := Info{
		Version:   strings.TrimSpace(appVersion),
		Commit:    strings.TrimSpace(gitCommit),
		BuildDate: strings.TrimSpace(buildDate),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}

	return info
}

// String returns a single-line summary suitable for startup logs.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
