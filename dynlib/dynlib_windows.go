//go:build windows

package dynlib

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/lattica-robotics/rcutils-go/errstate"
)

// platformHandle wraps the HMODULE LoadLibrary returns.
type platformHandle struct {
	module windows.Handle
}

func platformLoad(h *Handle, path string) error {
	module, err := windows.LoadLibrary(path)
	if err != nil {
		return errstate.New(errstate.Error, fmt.Sprintf("dynlib: LoadLibrary error: %v", err))
	}

	// Grow the buffer until GetModuleFileName stops truncating, the same
	// doubling loop the original uses around its allocator-backed buffer.
	const initialCapacity = windows.MAX_PATH
	buf := make([]uint16, initialCapacity)
	for {
		n, err := windows.GetModuleFileName(module, &buf[0], uint32(len(buf)))
		if err != nil {
			windows.FreeLibrary(module)
			return errstate.New(errstate.Error, fmt.Sprintf("dynlib: GetModuleFileName error: %v", err))
		}
		if int(n) < len(buf) {
			h.libraryPath = windows.UTF16ToString(buf[:n])
			break
		}
		buf = make([]uint16, len(buf)*2)
	}

	h.libHandle = platformHandle{module: module}
	return nil
}

func platformGetSymbol(h *Handle, symbolName string) (uintptr, error) {
	addr, err := windows.GetProcAddress(h.libHandle.module, symbolName)
	if err != nil {
		return 0, errstate.New(errstate.Error, fmt.Sprintf("dynlib: error getting symbol '%s': %v", symbolName, err))
	}
	return addr, nil
}

func platformHasSymbol(h *Handle, symbolName string) bool {
	_, err := windows.GetProcAddress(h.libHandle.module, symbolName)
	return err == nil
}

func platformUnload(h *Handle) error {
	if err := windows.FreeLibrary(h.libHandle.module); err != nil {
		return errstate.New(errstate.Error, fmt.Sprintf("dynlib: FreeLibrary error: %v", err))
	}
	return nil
}

// GetPlatformLibraryName returns the Windows-conventional file name for a
// library given its bare name: "foo.dll", or "food.dll" in debug builds.
func GetPlatformLibraryName(name string, debug bool) (string, error) {
	if name == "" {
		return "", errstate.New(errstate.InvalidArgument, "dynlib: get platform library name: name must not be empty")
	}
	if debug {
		return name + "d.dll", nil
	}
	return name + ".dll", nil
}
