// Package version reports the tvremote build version.
//
// Release builds set the values with ldflags:
//
//	go build -ldflags="-X github.com/muurk/tvremote/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/tvremote/internal/version.Commit=abc123"
//
// Otherwise they come from the module build info: the module version for
// `go install ...@v1.2.3`, VCS settings for a checkout build, and "dev"
// with a timestamp as a last resort.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

const shortCommit = 7

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v, c := fromBuildInfo(info)
			if Version == "" {
				Version = v
			}
			if Commit == "" {
				Commit = c
			}
		}
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo derives a version and commit from module build info. Either
// may be empty.
func fromBuildInfo(info *debug.BuildInfo) (version, commit string) {
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; rev != "" {
		if len(rev) > shortCommit {
			rev = rev[:shortCommit]
		}
		if settings["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		commit = rev
	}

	// "(devel)" marks a build from a local checkout
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v, commit
	}

	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		version = "dev-" + t.UTC().Format("20060102")
	}
	return version, commit
}

// Full returns the version with its commit, e.g. "v1.2.3 (commit: abc1234)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
