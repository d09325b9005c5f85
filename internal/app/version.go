package app

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/yomi-backend/internal/app.Version=1.0.0"
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion returns the version string used in startup logs. Without an
// ldflags commit it falls back to the VCS revision stamped by the toolchain.
func BuildVersion() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return fmt.Sprintf("%s (commit: %s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
