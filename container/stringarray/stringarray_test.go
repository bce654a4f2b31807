package stringarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_initFini(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Size())
	for i := 0; i < 3; i++ {
		_, present, err := a.Get(i)
		require.NoError(t, err)
		assert.False(t, present)
	}
	a.Fini()
	a.Fini()
}

func TestStringArray_setGet(t *testing.T) {
	a, _ := New(2)
	require.NoError(t, a.Set(0, "hello", true))
	v, present, err := a.Get(0)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, "hello", v)
}

func TestStringArray_resizeGrowsAndShrinks(t *testing.T) {
	a, _ := New(2)
	require.NoError(t, a.Set(0, "a", true))
	require.NoError(t, a.Set(1, "b", true))

	require.NoError(t, a.Resize(4))
	assert.Equal(t, 4, a.Size())
	v, present, _ := a.Get(0)
	assert.True(t, present)
	assert.Equal(t, "a", v)
	_, present, _ = a.Get(3)
	assert.False(t, present)

	require.NoError(t, a.Resize(1))
	assert.Equal(t, 1, a.Size())
}

func TestCmp_lexicographic(t *testing.T) {
	a, _ := New(2)
	_ = a.Set(0, "apple", true)
	_ = a.Set(1, "banana", true)

	b, _ := New(2)
	_ = b.Set(0, "apple", true)
	_ = b.Set(1, "cherry", true)

	c, err := Cmp(a, b)
	require.NoError(t, err)
	assert.Less(t, c, 0)
}

func TestCmp_tieBrokenByLength(t *testing.T) {
	a, _ := New(1)
	_ = a.Set(0, "apple", true)

	b, _ := New(2)
	_ = b.Set(0, "apple", true)
	_ = b.Set(1, "zzz", true)

	c, err := Cmp(a, b)
	require.NoError(t, err)
	assert.Less(t, c, 0)
}

func TestCmp_nullElementIsError(t *testing.T) {
	a, _ := New(1)
	b, _ := New(1)
	_ = b.Set(0, "x", true)
	_, err := Cmp(a, b)
	assert.Error(t, err)
}

func TestSort_nullsSortToEnd(t *testing.T) {
	a, _ := New(4)
	_ = a.Set(0, "banana", true)
	_ = a.Set(2, "apple", true)
	a.Sort()

	v0, p0, _ := a.Get(0)
	v1, p1, _ := a.Get(1)
	require.True(t, p0)
	require.True(t, p1)
	assert.Equal(t, "apple", v0)
	assert.Equal(t, "banana", v1)
	_, p2, _ := a.Get(2)
	_, p3, _ := a.Get(3)
	assert.False(t, p2)
	assert.False(t, p3)
}
