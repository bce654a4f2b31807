package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "UNSET", Unset.String())
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "INFO", Info.String())
	assert.Equal(t, "WARN", Warn.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "FATAL", Fatal.String())
}

func TestLevel_String_unknown(t *testing.T) {
	assert.Equal(t, "", Level(5).String())
	assert.Equal(t, "", Level(-10).String())
	assert.Equal(t, "", Level(1000).String())
}

func TestLevelFromString(t *testing.T) {
	l, ok := LevelFromString("WARN")
	require := assert.New(t)
	require.True(ok)
	require.Equal(Warn, l)

	_, ok = LevelFromString("bogus")
	require.False(ok)
}

func TestLevelFromString_caseInsensitive(t *testing.T) {
	l, ok := LevelFromString("debug")
	require := assert.New(t)
	require.True(ok)
	require.Equal(Debug, l)

	l, ok = LevelFromString("Info")
	require.True(ok)
	require.Equal(Info, l)

	l, ok = LevelFromString("unset")
	require.True(ok)
	require.Equal(Unset, l)
}

func TestLevel_ordering(t *testing.T) {
	assert.Less(t, int(Debug), int(Info))
	assert.Less(t, int(Info), int(Warn))
	assert.Less(t, int(Warn), int(Error))
	assert.Less(t, int(Error), int(Fatal))
}
