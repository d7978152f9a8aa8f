package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.data")
	s, err := NewBoltKVStore(path, "repodash")
	require.NoError(t, err)

	testKVStore(t, s)
	require.NoError(t, s.Close())

	// Data survives reopening.
	s, err = NewBoltKVStore(path, "repodash")
	require.NoError(t, err)
	defer s.Close()

	data, err := s.ReadKey([]byte("authors"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`["bob"]`), data)
}

// testKVStore checks read/update/delete semantics shared by all stores.
// Leaves `["bob"]` stored under "authors".
func testKVStore(t *testing.T, s KVStore) {
	t.Helper()

	data, err := s.ReadKey([]byte("authors"))
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.UpdateKey([]byte("authors"), []byte(`["alice"]`)))
	require.NoError(t, s.UpdateKey([]byte("last_words"), []byte(`[]`)))

	data, err = s.ReadKey([]byte("authors"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`["alice"]`), data)

	require.NoError(t, s.UpdateKey([]byte("authors"), []byte(`["bob"]`)))
	data, err = s.ReadKey([]byte("authors"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`["bob"]`), data)

	require.NoError(t, s.DeleteKey([]byte("last_words")))
	require.NoError(t, s.DeleteKey([]byte("missing")))
	data, err = s.ReadKey([]byte("last_words"))
	require.NoError(t, err)
	assert.Nil(t, data)
}
