package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetForTest(t *testing.T) {
	t.Helper()
	require.NoError(t, Shutdown())
	require.NoError(t, Initialize())
	t.Cleanup(func() { _ = Shutdown() })
}

func TestGetDefaultLoggerLevel_defaultsToInfo(t *testing.T) {
	resetForTest(t)
	assert.Equal(t, Info, GetDefaultLoggerLevel())
}

func TestSetDefaultLoggerLevel(t *testing.T) {
	resetForTest(t)
	SetDefaultLoggerLevel(Error)
	assert.Equal(t, Error, GetDefaultLoggerLevel())
}

func TestGetLoggerLevel_unsetReturnsUnset(t *testing.T) {
	resetForTest(t)
	assert.Equal(t, Unset, GetLoggerLevel("a.b.c"))
}

func TestGetLoggerLevel_emptyNameReturnsDefault(t *testing.T) {
	resetForTest(t)
	SetDefaultLoggerLevel(Warn)
	assert.Equal(t, Warn, GetLoggerLevel(""))
}

func TestSetLoggerLevel_invalidLevelIsError(t *testing.T) {
	resetForTest(t)
	err := SetLoggerLevel("a", Level(7))
	assert.Error(t, err)
}

func TestScenarioS3_effectiveLevelWalksAncestors(t *testing.T) {
	resetForTest(t)
	require.NoError(t, SetLoggerLevel("a", Warn))
	require.NoError(t, SetLoggerLevel("a.b", Debug))

	assert.Equal(t, Warn, GetEffectiveLevel("a"))
	assert.Equal(t, Debug, GetEffectiveLevel("a.b"))
	assert.Equal(t, Debug, GetEffectiveLevel("a.b.c"))
	assert.Equal(t, Warn, GetEffectiveLevel("a.other"))
	assert.Equal(t, GetDefaultLoggerLevel(), GetEffectiveLevel("unrelated"))
}

func TestSetLoggerLevel_onAncestorPurgesCachedDescendants(t *testing.T) {
	resetForTest(t)
	require.NoError(t, SetLoggerLevel("a.b", Debug))
	// Insert a cached (not user-set) descendant entry directly, with the
	// user bit clear; GetEffectiveLevel itself never adds such entries.
	require.NoError(t, addSeverityEntry("a.b.c", Debug, false))
	require.True(t, g.severities.KeyExists("a.b.c"))

	require.NoError(t, SetLoggerLevel("a.b", Warn))
	assert.False(t, g.severities.KeyExists("a.b.c"))
}

func TestSetLoggerLevel_leavesUserSetDescendantsAlone(t *testing.T) {
	resetForTest(t)
	require.NoError(t, SetLoggerLevel("a.b", Debug))
	require.NoError(t, SetLoggerLevel("a.b.c", Error))

	require.NoError(t, SetLoggerLevel("a.b", Warn))
	assert.True(t, g.severities.KeyExists("a.b.c"))
	level, ok := getSeverityEntry("a.b.c")
	require.True(t, ok)
	assert.Equal(t, Error, level)
}

func TestSetLoggerLevel_emptyNameUpdatesDefault(t *testing.T) {
	resetForTest(t)
	require.NoError(t, SetLoggerLevel("", Error))
	assert.Equal(t, Error, GetDefaultLoggerLevel())
}

func TestScenarioS4_isEnabledForUsesEffectiveLevel(t *testing.T) {
	resetForTest(t)
	require.NoError(t, SetLoggerLevel("a.b", Warn))

	assert.False(t, IsEnabledFor("a.b", Info))
	assert.True(t, IsEnabledFor("a.b", Warn))
	assert.True(t, IsEnabledFor("a.b", Error))
	assert.True(t, IsEnabledFor("a.b.c", Warn))
}

func TestIsEnabledFor_emptyNameUsesDefaultDirectly(t *testing.T) {
	resetForTest(t)
	SetDefaultLoggerLevel(Error)
	assert.False(t, IsEnabledFor("", Warn))
	assert.True(t, IsEnabledFor("", Error))
}

func TestGetLoggerLevelN_clampsOutOfRangeLength(t *testing.T) {
	resetForTest(t)
	require.NoError(t, SetLoggerLevel("abc", Debug))
	assert.Equal(t, Debug, GetLoggerLevelN("abcdef", 3))
	assert.Equal(t, Debug, GetLoggerLevelN("abc", 100))
}
