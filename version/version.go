// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// Info describes a build of a program.
type Info struct {
	// Name is the command name, derived from the main package path.
	Name string
	// Module is the main module version, or "devel" when unknown.
	Module string
	// Commit is the VCS revision the binary was built from, if known.
	Commit string
	// Dirty reports whether the working tree had uncommitted changes.
	Dirty bool
	// Go is the toolchain version.
	Go string
}

// String returns a human-readable representation of i, terminated by a
// newline.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Module)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&sb, " (%s", commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " built with %s\n", i.Go)
	return sb.String()
}

// Version returns build information of the running binary.
func Version() Info {
	info := Info{
		Name:   CmdName(),
		Module: "devel",
		Go:     runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Module = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// CmdName returns the name of the running command: the last element of the
// main package path, or the executable name if build info is unavailable.
func CmdName() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Path != "" && !strings.HasSuffix(bi.Path, ".test") {
		return filepath.Base(bi.Path)
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}
