// Package version reports how the webnsgen binary was built.
package version

import (
	"runtime"
	"runtime/debug"
)

// Set at build time via -ldflags "-X github.com/teranos/webns/version.Version=...".
var (
	Version    = ""
	CommitHash = ""
)

// Info describes the running binary.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the build information, falling back to what the Go toolchain
// embedded when no ldflags were given.
func Get() Info {
	info := Info{
		Version:    Version,
		CommitHash: CommitHash,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.CommitHash == "" {
					info.CommitHash = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

// Short returns the first seven characters of the commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// String returns a human-readable version string
func (i Info) String() string {
	s := "webnsgen " + i.Version
	if c := i.Short(); c != "" {
		s += " (commit " + c
		if i.Modified {
			s += ", modified"
		}
		s += ")"
	}
	return s
}
