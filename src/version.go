package wlan

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/kelpie/src.KELPIE_VERSION=X'"`
var KELPIE_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

func printVersion() {
	var buildInfo, _ = debug.ReadBuildInfo()

	var buildCommit = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
	var buildTimeStr = getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")

	var version = KELPIE_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	fmt.Printf("Kelpie - Version %s (revision %s, built at %s)\n", version, buildCommit, buildTimeStr)
}
