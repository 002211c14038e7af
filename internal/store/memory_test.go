package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissingKey(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), KeyUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, KeySessions, []byte(`[{"id":1}]`)))
	got, err := m.Get(ctx, KeySessions)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := []byte(`["Guitar"]`)
	require.NoError(t, m.Set(ctx, KeySkills, in))
	in[2] = 'X' // caller mutates its buffer after Set

	got, err := m.Get(ctx, KeySkills)
	require.NoError(t, err)
	assert.Equal(t, `["Guitar"]`, string(got))

	got[2] = 'Y' // mutating the returned buffer must not affect the store
	again, err := m.Get(ctx, KeySkills)
	require.NoError(t, err)
	assert.Equal(t, `["Guitar"]`, string(again))
}
