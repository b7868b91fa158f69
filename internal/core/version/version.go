// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Date        string `json:"date"`
	CycleLength int    `json:"cycle_length"`
}

// Info returns the build information. version, commit and date are set at build time:
//
//	-ldflags "-X 'lunacycle/internal/core/version.version=v0.1.0' -X 'lunacycle/internal/core/version.commit=abcd'"
func Info(cycleLength int) BuildInfo {
	return BuildInfo{
		Service:     "lunacycle-api",
		Version:     version,
		Commit:      commit,
		Date:        date,
		CycleLength: cycleLength,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
