//go:build linux

package dynlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattica-robotics/rcutils-go/allocator"
)

func TestGetZeroInitialized_notLoaded(t *testing.T) {
	h := GetZeroInitialized()
	assert.False(t, IsLoaded(h))
}

func TestLoad_emptyPathIsError(t *testing.T) {
	_, err := Load("", allocator.DefaultAllocator())
	assert.Error(t, err)
}

func TestLoad_invalidAllocatorIsError(t *testing.T) {
	_, err := Load("libm.so.6", allocator.ZeroInitializedAllocator())
	assert.Error(t, err)
}

// TestScenarioS6_loadSymbolUnload mirrors spec.md §8 S6: load a real
// shared library present on every Linux system, resolve a symbol known to
// exist in it, confirm a nonexistent symbol reports absent, then unload.
func TestScenarioS6_loadSymbolUnload(t *testing.T) {
	h, err := Load("libm.so.6", allocator.DefaultAllocator())
	require.NoError(t, err)
	require.True(t, IsLoaded(h))
	assert.NotEmpty(t, h.LibraryPath())

	assert.True(t, h.HasSymbol("cos"))
	assert.False(t, h.HasSymbol("this_symbol_does_not_exist_anywhere"))

	addr, err := h.GetSymbol("cos")
	require.NoError(t, err)
	assert.NotZero(t, addr)

	_, err = h.GetSymbol("this_symbol_does_not_exist_anywhere")
	assert.Error(t, err)

	require.NoError(t, Unload(h))
	assert.False(t, IsLoaded(h))
}

func TestLoad_nonexistentLibraryIsError(t *testing.T) {
	_, err := Load("libthis_definitely_does_not_exist.so", allocator.DefaultAllocator())
	assert.Error(t, err)
}

func TestUnload_notLoadedIsError(t *testing.T) {
	h := GetZeroInitialized()
	assert.Error(t, Unload(h))
}

func TestGetPlatformLibraryName(t *testing.T) {
	name, err := GetPlatformLibraryName("foo", false)
	require.NoError(t, err)
	assert.Equal(t, "libfoo.so", name)

	debugName, err := GetPlatformLibraryName("foo", true)
	require.NoError(t, err)
	assert.Equal(t, "libfood.so", debugName)
}

func TestGetPlatformLibraryName_emptyNameIsError(t *testing.T) {
	_, err := GetPlatformLibraryName("", false)
	assert.Error(t, err)
}
