// Package version reports which promptsnap build is running.
//
// Release builds stamp Version, Commit and BuildTime through -ldflags:
//
//	go build -ldflags "-X 'promptsnap/pkg/version.Version=1.2.3' -X 'promptsnap/pkg/version.Commit=abcdefg'"
//
// Anything left unstamped is filled from the module and VCS data the Go
// toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set with -ldflags at release time.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

const shortCommitLen = 12

// Info describes the running build.
type Info struct {
	Version   string
	Commit    string // Short VCS revision, empty when unknown.
	BuildTime string // VCS commit time or stamped build time, empty when unknown.
	Modified  bool   // Built from a dirty working tree.
	GoVersion string
	Platform  string
}

// Get returns the stamped build data, completed from the embedded build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(Version, Commit, BuildTime, bi)
}

func resolve(version, commit, buildTime string, bi *debug.BuildInfo) Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		info.Commit = shorten(info.Commit)
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	info.Commit = shorten(info.Commit)
	return info
}

func shorten(commit string) string {
	if len(commit) > shortCommitLen {
		return commit[:shortCommitLen]
	}
	return commit
}

// String renders the build on one line, e.g.
// "promptsnap 1.2.3 (3f2a9c1d0b4e, 2024-04-27T15:04:05Z, modified) go1.24.0 linux/amd64".
// Unknown parts are left out.
func (i Info) String() string {
	var details []string
	if i.Commit != "" {
		details = append(details, i.Commit)
	}
	if i.BuildTime != "" {
		details = append(details, i.BuildTime)
	}
	if i.Modified {
		details = append(details, "modified")
	}

	s := "promptsnap " + i.Version
	if len(details) > 0 {
		s += " (" + strings.Join(details, ", ") + ")"
	}
	return fmt.Sprintf("%s %s %s", s, i.GoVersion, i.Platform)
}
