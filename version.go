package cdkbridge

import (
	"fmt"
	"io"
	"runtime"
)

// Populated during build, don't touch!
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "undefined"
)

// BuildInfo describes the binary
type BuildInfo struct {
	Version   string
	GitRev    string
	GitBranch string
	BuildDate string
	GoVersion string
	OS        string
	Arch      string
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitRev:    GitRev,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// KeyValues returns the info ready to be used as structured log fields
func (b BuildInfo) KeyValues() []interface{} {
	return []interface{}{
		"version", b.Version,
		"gitRevision", b.GitRev,
		"gitBranch", b.GitBranch,
		"goVersion", b.GoVersion,
		"built", b.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", b.OS, b.Arch),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Version:      %s\n"+
		"Git revision: %s\n"+
		"Git branch:   %s\n"+
		"Go version:   %s\n"+
		"Built:        %s\n"+
		"OS/Arch:      %s/%s\n",
		b.Version, b.GitRev, b.GitBranch,
		b.GoVersion, b.BuildDate, b.OS, b.Arch)
}

// PrintVersion prints version info into the provided io.Writer.
func PrintVersion(w io.Writer) {
	fmt.Fprint(w, GetBuildInfo().String())
}
