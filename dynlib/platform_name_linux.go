//go:build linux

package dynlib

import "fmt"

func platformLibraryName(name string, debug bool) string {
	if debug {
		return fmt.Sprintf("lib%sd.so", name)
	}
	return fmt.Sprintf("lib%s.so", name)
}
