// Package version holds build information injected with -ldflags.
package version

// Set via -ldflags "-X github.com/llxisdsh/atomwait/internal/version.Version=...".
var (
	Version  = "dev"
	Revision = "unknown"
)

// String returns the version and revision in one line.
func String() string {
	return Version + "+" + Revision
}
