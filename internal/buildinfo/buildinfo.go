// Package buildinfo exposes build-time identity for window titles and logs.
package buildinfo

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Commit is stamped at build time via -ldflags.
var Commit = "unknown"

// Short returns a compact build identifier.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
