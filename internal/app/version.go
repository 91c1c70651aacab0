package app

import (
	"fmt"
	"runtime/debug"
)

// Release stamps, injected at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/wordfinder/internal/app.Version=v1.2.0" ./cmd/wordfinder
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the line printed by -version and logged at startup.
// A commit or build time missing from ldflags is taken from the VCS stamp
// the go command embeds in the binary.
func BuildVersion() string {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	return formatVersion(Version, Commit, BuildTime, settings)
}

func formatVersion(version, commit, built string, settings []debug.BuildSetting) string {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "" {
				commit = s.Value
			}
		case "vcs.time":
			if built == "" {
				built = s.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, built)
}
