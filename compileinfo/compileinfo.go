// Package compileinfo reports which commit a tool was built from, so that
// rescaled images can be traced back to the binary that produced them.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Commit == "" {
		return fmt.Sprintf("%s built with %s (no VCS information)", c.name(), c.GoVersion)
	}

	dirty := ""
	if c.Modified {
		dirty = " (modified)"
	}

	return fmt.Sprintf("%s built with %s at commit %s%s, %s", c.name(), c.GoVersion, c.Commit, dirty, c.CommitTime)
}

func (c CompileInfo) name() string {
	if c.Package == "" {
		return "binary"
	}

	return c.Package
}

// Get reads the build settings embedded by the Go toolchain.
func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
