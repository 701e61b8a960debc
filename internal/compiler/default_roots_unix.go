// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || (js && wasm) || linux || netbsd || openbsd || solaris

package compiler

import (
	"os"
	"path/filepath"
	"strings"
)

// getDefaultRoots lists A68_UNITS_PATH, if set, followed by an algol68/units
// directory in each XDG data directory.
func getDefaultRoots(lookup func(string) (string, bool)) []string {
	var roots []string
	if unitsPath, ok := lookup("A68_UNITS_PATH"); ok && unitsPath != "" {
		roots = append(roots, filepath.SplitList(unitsPath)...)
	}
	xdgDirs, ok := lookup("XDG_DATA_DIRS")
	if !ok {
		xdgDirs = "/usr/local/share/:/usr/share/"
	}
	for _, dataDir := range strings.Split(xdgDirs, ":") {
		p := filepath.Join(dataDir, "algol68", "units")
		p = os.Expand(p, func(s string) string {
			v, _ := lookup(s)
			return v
		})
		roots = append(roots, p)
	}
	return roots
}
