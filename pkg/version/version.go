// Package version exposes the build information stamped into the
// srcfuse binary.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time, e.g.
// go build -ldflags "-X 'srcfuse/pkg/version.Version=1.2.3' -X 'srcfuse/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"     // Semantic version of the application
	Commit    = "none"    // Git commit hash
	BuildTime = "unknown" // Build timestamp
)

// Info bundles the stamped values with the runtime's own details.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the version information on a single line, e.g.
// "srcfuse version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64".
func (i Info) String() string {
	return fmt.Sprintf(
		"srcfuse version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
