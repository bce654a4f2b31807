// Package dynlib loads shared libraries at runtime and resolves symbols out
// of them, mirroring the original's shared_library component (spec.md
// §4.8). The platform-specific loader calls (dlopen/dlsym/dlclose on POSIX,
// LoadLibrary/GetProcAddress/FreeLibrary on Windows) live in
// dynlib_unix.go and dynlib_windows.go; this file holds the Handle type and
// the parts of the contract that don't vary by platform.
package dynlib

import (
	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/errstate"
)

// Handle is a loaded shared library. The zero value is not ready for use;
// obtain a loaded Handle from Load.
type Handle struct {
	libHandle   platformHandle
	libraryPath string
	alloc       allocator.Allocator
	loaded      bool
}

// GetZeroInitialized returns a Handle in the same state the original's
// rcutils_get_zero_initialized_shared_library returns: not loaded, with no
// allocator attached. Passing one of these to GetSymbol or Unload is an
// error; only a Handle returned by Load is loaded.
func GetZeroInitialized() *Handle {
	return &Handle{alloc: allocator.ZeroInitializedAllocator()}
}

// LibraryPath returns, once loaded, the full module path Windows reports
// (Windows) or the path exactly as passed to Load (every other platform);
// on POSIX the path the dynamic linker resolved the library to is not
// looked up.
func (h *Handle) LibraryPath() string { return h.libraryPath }

// IsLoaded reports whether Load has succeeded on this handle and Unload has
// not since been called. A second handle referring to the same underlying
// library that has not itself been unloaded is not visible here; this only
// tracks this handle's own state, matching the original's documented caveat.
func IsLoaded(h *Handle) bool {
	return h != nil && h.loaded
}

// Load opens the shared library at path and returns a new, loaded Handle
// holding its platform-specific handle, its library path (see LibraryPath)
// and the allocator for later use.
func Load(path string, alloc allocator.Allocator) (*Handle, error) {
	if path == "" {
		return nil, errstate.New(errstate.InvalidArgument, "dynlib: load: path must not be empty")
	}
	if !allocator.IsValid(alloc) {
		return nil, errstate.New(errstate.InvalidArgument, "dynlib: load: invalid allocator")
	}

	h := &Handle{alloc: alloc}
	if err := platformLoad(h, path); err != nil {
		return nil, err
	}
	h.loaded = true
	return h, nil
}

// GetSymbol resolves symbolName against the loaded library and returns an
// opaque, platform-specific pointer suitable only for passing to helpers
// that know how to turn it into a typed Go function with a local unsafe
// cast (see the platformHandle comment in dynlib_unix.go).
func (h *Handle) GetSymbol(symbolName string) (uintptr, error) {
	if h == nil || !h.loaded || symbolName == "" {
		return 0, errstate.New(errstate.InvalidArgument, "dynlib: get symbol: invalid inputs")
	}
	return platformGetSymbol(h, symbolName)
}

// HasSymbol reports whether symbolName resolves in the loaded library,
// without raising an error when it does not.
func (h *Handle) HasSymbol(symbolName string) bool {
	if h == nil || !h.loaded || symbolName == "" {
		return false
	}
	return platformHasSymbol(h, symbolName)
}

// Unload closes the library and releases the handle's resources. Whether or
// not closing the library fails, h is left in the zero-initialized state
// (not loaded, no path, zero-initialized allocator).
func Unload(h *Handle) error {
	if h == nil || !h.loaded {
		return errstate.New(errstate.InvalidArgument, "dynlib: unload: handle not loaded")
	}
	err := platformUnload(h)
	h.libHandle = platformHandle{}
	h.libraryPath = ""
	h.alloc = allocator.ZeroInitializedAllocator()
	h.loaded = false
	return err
}
