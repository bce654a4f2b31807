//go:build !windows

package dynlib

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/lattica-robotics/rcutils-go/errstate"
)

// platformHandle wraps the void* dlopen returns. It is opaque outside this
// file; GetSymbol hands callers a uintptr they can turn into a typed Go
// function with a local unsafe cast, the same contract rcutils_get_symbol
// documents for its void* return.
type platformHandle struct {
	ptr unsafe.Pointer
}

func platformLoad(h *Handle, path string) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	ptr := C.dlopen(cPath, C.RTLD_LAZY)
	if ptr == nil {
		return errstate.New(errstate.Error, "dynlib: dlopen error: "+C.GoString(C.dlerror()))
	}

	// Path resolution via dyld/link-map introspection is platform-specific
	// C that would need its own cgo per OS; this module takes the fallback
	// the original itself offers for platforms without a link-map API and
	// simply stores the caller's path verbatim.
	h.libHandle = platformHandle{ptr: ptr}
	h.libraryPath = path
	return nil
}

func platformGetSymbol(h *Handle, symbolName string) (uintptr, error) {
	cName := C.CString(symbolName)
	defer C.free(unsafe.Pointer(cName))

	C.dlerror() // clear any existing error
	sym := C.dlsym(h.libHandle.ptr, cName)
	if errMsg := C.dlerror(); errMsg != nil {
		return 0, errstate.New(errstate.Error, "dynlib: error getting symbol '"+symbolName+"': "+C.GoString(errMsg))
	}
	if sym == nil {
		return 0, errstate.New(errstate.Error, "dynlib: symbol '"+symbolName+"' does not exist in library '"+h.libraryPath+"'")
	}
	return uintptr(sym), nil
}

func platformHasSymbol(h *Handle, symbolName string) bool {
	cName := C.CString(symbolName)
	defer C.free(unsafe.Pointer(cName))

	C.dlerror()
	sym := C.dlsym(h.libHandle.ptr, cName)
	return C.dlerror() == nil && sym != nil
}

func platformUnload(h *Handle) error {
	if C.dlclose(h.libHandle.ptr) != 0 {
		return errstate.New(errstate.Error, "dynlib: dlclose error: "+C.GoString(C.dlerror()))
	}
	return nil
}

// GetPlatformLibraryName returns the platform-conventional file name for a
// library given its bare name, e.g. "foo" -> "libfoo.so" on Linux,
// "libfoo.dylib" on macOS, with a "d" debug suffix inserted when debug is
// true.
func GetPlatformLibraryName(name string, debug bool) (string, error) {
	if name == "" {
		return "", errstate.New(errstate.InvalidArgument, "dynlib: get platform library name: name must not be empty")
	}
	return platformLibraryName(name, debug), nil
}
