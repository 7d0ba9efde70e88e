// Package version exposes the build version of the adapter binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version can be overridden by ldflags at build time.
var Version = "dev"

// String returns the version, with the short VCS revision when available.
func String() string {
	res := Version
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				rev := setting.Value
				if len(rev) > 7 {
					rev = rev[:7]
				}
				res += fmt.Sprintf(" (%s)", rev)
			}
		}
	}
	return res
}
