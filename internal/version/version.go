// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports which schemazod build is running and which Zod
// release its output is written for.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time using ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ZodTarget is the Zod release range generated code is checked against.
// z.coerce.date first shipped in 3.20.
const ZodTarget = "zod >=3.20"

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Dirty     bool
}

// Current returns the build, filling anything ldflags left unset from the
// module build info ("go install module@version" sets it).
func Current() Build {
	b := Build{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	return b.withBuildInfo(info)
}

func (b Build) withBuildInfo(info *debug.BuildInfo) Build {
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(s.Value) >= 7 {
				b.Commit = s.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
	return b
}

// String renders the build for --version.
func (b Build) String() string {
	commit := b.Commit
	if b.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("schemazod %s (commit: %s, built: %s, go: %s)\ntargets: %s",
		b.Version, commit, b.Date, b.GoVersion, ZodTarget)
}
