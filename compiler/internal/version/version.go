// Package version reports the cslex build version.
package version

// Version is stamped at link time:
//
//	go build -ldflags "-X github.com/desilang/cslex/compiler/internal/version.Version=v0.3.0" ./compiler/cmd/cslex
var Version = "dev"

func String() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
