// Package version reports the docfill build version from the module build
// info embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// gitShortHashLength is the length of a git short hash.
const gitShortHashLength = 7

// Info is the version information of the running binary.
type Info struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

// Read collects version information from runtime/debug.ReadBuildInfo.
// Without build info the version is "unknown"; local builds report "dev".
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{Version: "unknown"}
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Info {
	out := Info{Version: info.Main.Version, GoVersion: info.GoVersion}
	if out.Version == "" || out.Version == "(devel)" {
		out.Version = "dev"
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.modified":
			out.Modified = setting.Value == "true"
		}
	}
	if len(out.Revision) > gitShortHashLength {
		out.Revision = out.Revision[:gitShortHashLength]
	}
	return out
}

// String formats the version as one of:
//   - "vX.Y.Z" or "dev"
//   - "vX.Y.Z (rev: abc1234)"
//   - "vX.Y.Z (rev: abc1234, modified)"
func (i Info) String() string {
	if i.Revision == "" {
		return i.Version
	}
	dirty := ""
	if i.Modified {
		dirty = ", modified"
	}
	return fmt.Sprintf("%s (rev: %s%s)", i.Version, i.Revision, dirty)
}

// Get returns the formatted version of the running binary.
func Get() string {
	return Read().String()
}
