// Package buildinfo carries the build identity stamped in via -ldflags,
// shown in the window title and startup log.
package buildinfo

// Version is the release tag, set at build time via -ldflags.
var Version = "dev"

// Commit is the VCS revision, set at build time via -ldflags.
var Commit = "unknown"

// Short returns the most specific identifier available: the version if
// one was stamped, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
