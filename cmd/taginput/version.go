package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"taginput/internal/config"
	"taginput/internal/ui/theme"
)

// Set with -ldflags "-X main.Version=... -X main.Build=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

// printVersion writes the release line followed by what this build can do:
// matchers, output formats and bundled themes.
func printVersion(w io.Writer) {
	var stamp []string
	if Build != "" && Build != "unknown" {
		stamp = append(stamp, "build "+Build)
	}
	if BuildTime != "" {
		stamp = append(stamp, BuildTime)
	}
	if len(stamp) > 0 {
		fmt.Fprintf(w, "taginput %s (%s)\n", Version, strings.Join(stamp, ", "))
	} else {
		fmt.Fprintf(w, "taginput %s\n", Version)
	}

	fmt.Fprintf(w, "  runtime   %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if rev := devRevision(); rev != "" {
		fmt.Fprintf(w, "  commit    %s\n", rev)
	}
	fmt.Fprintf(w, "  matchers  %s\n", strings.Join(config.MatcherNames(), ", "))
	fmt.Fprintf(w, "  outputs   %s\n", strings.Join(outputFormats, ", "))
	fmt.Fprintf(w, "  themes    %s\n", strings.Join(theme.Available(), ", "))
}

// devRevision returns the short VCS revision of an unreleased build.
func devRevision() string {
	if Version != "dev" {
		return ""
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
			return setting.Value[:7]
		}
	}
	return ""
}
