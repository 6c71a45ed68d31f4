package system

// VersionResponse is the /version payload.
type VersionResponse struct {
	// Version is the release version, "dev" for local builds.
	Version string `json:"version"`
	// Commit is the git commit hash the binary was built from.
	Commit string `json:"commit"`
	// BuildDate is the build timestamp (UTC, RFC3339).
	BuildDate string `json:"build_date"`
	// GoVersion is the compiler version.
	GoVersion string `json:"go_version"`
	// Platform is the GOOS/GOARCH pair of the binary.
	Platform string `json:"platform"`
}
