// Package version reports which build of minic is running.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Commit and BuildTime are set at build time via ldflags. When they are
// left unset, the VCS stamp that `go build` embeds is used instead.
var (
	Commit    = unknown
	BuildTime = unknown
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version string (commit-hash based, no semver).
func String() string {
	commit, built := shorten(Commit), BuildTime
	if Commit == unknown || BuildTime == unknown {
		vcsCommit, vcsTime, modified := vcsStamp()
		if Commit == unknown && vcsCommit != "" {
			commit = shorten(vcsCommit)
			if modified {
				commit += "-dirty"
			}
		}
		if BuildTime == unknown && vcsTime != "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("minic dev (commit: %s, built: %s)", commit, built)
}

// vcsStamp returns the revision, commit time and dirty flag recorded in
// the binary, if any.
func vcsStamp() (revision, at string, modified bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, at, modified
}

func shorten(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
