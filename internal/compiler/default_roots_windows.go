// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package compiler

import (
	"path/filepath"
)

func getDefaultRoots(lookup func(string) (string, bool)) []string {
	var roots []string
	if unitsPath, ok := lookup("A68_UNITS_PATH"); ok && unitsPath != "" {
		roots = append(roots, filepath.SplitList(unitsPath)...)
	}
	userprofile, _ := lookup("USERPROFILE")
	systemdrive, _ := lookup("SystemDrive")
	return append(roots,
		filepath.Join(userprofile, "AppData", "Local", "algol68", "units"),
		filepath.Join(systemdrive, "ProgramData", "algol68", "units"),
	)
}
