package stringmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMap_initFini(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Capacity())
	m.Fini()
	m.Fini()
}

func TestStringMap_doubleInitIsError(t *testing.T) {
	m, _ := New(4)
	err := m.Init(4)
	require.Error(t, err)
	e, ok := err.(interface{ Error() string })
	require.True(t, ok)
	_ = e
}

func TestStringMap_setGet(t *testing.T) {
	m, _ := New(4)
	require.NoError(t, m.Set("a", "1"))
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestStringMap_setNoResize_notEnoughSpace(t *testing.T) {
	m, _ := New(1)
	require.NoError(t, m.SetNoResize("a", "1"))
	err := m.SetNoResize("b", "2")
	assert.Error(t, err)
}

func TestStringMap_set_autoGrowsOnNotEnoughSpace(t *testing.T) {
	m, _ := New(0)
	require.NoError(t, m.Set("a", "1"))
	require.NoError(t, m.Set("b", "2"))
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestStringMap_unsetThenKeyExistsFalse(t *testing.T) {
	m, _ := New(4)
	require.NoError(t, m.Set("a", "1"))
	require.NoError(t, m.Unset("a"))
	assert.False(t, m.KeyExists("a"))
}

func TestStringMap_clear(t *testing.T) {
	m, _ := New(4)
	require.NoError(t, m.Set("a", "1"))
	require.NoError(t, m.Clear())
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 4, m.Capacity())
}

func TestStringMap_reserveShrinkBelowSizeIsError(t *testing.T) {
	m, _ := New(4)
	require.NoError(t, m.Set("a", "1"))
	assert.Error(t, m.Reserve(0))
}

func TestStringMap_iteration(t *testing.T) {
	m, _ := New(8)
	want := map[string]string{}
	for i := 0; i < 5; i++ {
		k := fmt.Sprintf("k%d", i)
		v := fmt.Sprintf("v%d", i)
		require.NoError(t, m.Set(k, v))
		want[k] = v
	}
	got := map[string]string{}
	var prev *string
	for {
		k, ok := m.GetNextKey(prev)
		if !ok {
			break
		}
		v, _ := m.Get(k)
		got[k] = v
		kk := k
		prev = &kk
	}
	assert.Equal(t, want, got)
}

func TestStringMap_copy(t *testing.T) {
	src, _ := New(4)
	require.NoError(t, src.Set("a", "1"))
	require.NoError(t, src.Set("b", "2"))

	dst, _ := New(0)
	require.NoError(t, Copy(src, dst))
	v, ok := dst.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	v, ok = dst.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}
