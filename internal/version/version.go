package version

import "runtime/debug"

// Version is overridden at build time with
// -ldflags "-X github.com/bnema/webclicker/internal/version.Version=v1.2.3".
var Version = "dev"

func String() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return Version
	}
	return info.Main.Version
}
