package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both bridges must behave identically; run the same contract against
// each.
func bridges(t *testing.T) map[string]Bridge {
	t.Helper()
	sqlite, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	return map[string]Bridge{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestBridgeContract(t *testing.T) {
	for name, b := range bridges(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := b.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok, "absent key is not an error")

			require.NoError(t, b.Set(KeyCart, `[{"quantity":1}]`))
			v, ok, err := b.Get(KeyCart)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"quantity":1}]`, v)

			// Set on an existing key upserts.
			require.NoError(t, b.Set(KeyCart, `[]`))
			v, ok, err = b.Get(KeyCart)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[]`, v)

			require.NoError(t, b.Delete(KeyCart))
			_, ok, err = b.Get(KeyCart)
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting an absent key is a no-op.
			require.NoError(t, b.Delete("missing"))
		})
	}
}

func TestBridgeKeysAreIndependent(t *testing.T) {
	for name, b := range bridges(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(KeyUser, `{"id":"u1"}`))
			require.NoError(t, b.Set(KeyTheme, "dark"))
			require.NoError(t, b.Delete(KeyUser))

			v, ok, err := b.Get(KeyTheme)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "dark", v)
		})
	}
}
