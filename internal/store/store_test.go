package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set("k", "v1"))
	require.NoError(t, m.Set("k", "v2"))
	v, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, m.Delete("k"))
	require.NoError(t, m.Delete("k"))
	_, err = m.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, m.Close())
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("k", "kept"))

	quota := errors.New("quota exceeded")
	m.FailWrites = quota
	assert.ErrorIs(t, m.Set("k", "lost"), quota)
	assert.ErrorIs(t, m.Delete("k"), quota)

	v, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "kept", v)
}
