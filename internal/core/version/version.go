// Package version exposes build metadata stamped in at link time
package version

// BuildInfo is what the meta endpoint and the CLI version command report
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set via -ldflags "-X 'issuehound/internal/core/version.version=v0.1.0'
// -X 'issuehound/internal/core/version.commit=abcd' ..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{
		Service: "issuehound-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
