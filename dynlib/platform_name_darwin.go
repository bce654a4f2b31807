//go:build darwin

package dynlib

import "fmt"

func platformLibraryName(name string, debug bool) string {
	if debug {
		return fmt.Sprintf("lib%sd.dylib", name)
	}
	return fmt.Sprintf("lib%s.dylib", name)
}
