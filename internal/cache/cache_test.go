package cache

import (
	"errors"
	"testing"

	"github.com/m-zajac/repodash/internal/app"
	"github.com/m-zajac/repodash/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueCacheRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value interface{}
		out   func() interface{}
	}{
		{
			name:  "authors",
			key:   app.KeyAuthors,
			value: &[]string{"alice", "bob"},
			out:   func() interface{} { return &[]string{} },
		},
		{
			name:  "empty authors",
			key:   app.KeyAuthors,
			value: &[]string{},
			out:   func() interface{} { return &[]string{"stale"} },
		},
		{
			name: "outliers",
			key:  app.KeyLastOutliers,
			value: &[]app.Outlier{
				{SHA: "abcdef1234", Title: "Fix bug", TotalChanges: 500, ZScore: 4.2},
			},
			out: func() interface{} { return &[]app.Outlier{} },
		},
		{
			name: "activity keeps order",
			key:  app.KeyLastActivity,
			value: &app.CachedActivity{
				Data: app.ActivitySeries{
					{Label: "Sun", Value: 1},
					{Label: "Mon", Value: 7},
					{Label: "Sat", Value: 2.5},
				},
				Metric: app.MetricTotalChanges,
			},
			out: func() interface{} { return &app.CachedActivity{} },
		},
		{
			name:  "words",
			key:   app.KeyLastWords,
			value: &[]app.WordFrequency{{Text: "parser", Value: 3}},
			out:   func() interface{} { return &[]app.WordFrequency{} },
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, memoSize := range []int{0, 8} {
				c, err := New(mock.NewKVStore(nil), memoSize)
				require.NoError(t, err)

				require.NoError(t, c.Set(tt.key, tt.value))

				got := tt.out()
				found, err := c.Get(tt.key, got)
				require.NoError(t, err)
				require.True(t, found)
				assert.Equal(t, tt.value, got)
			}
		})
	}
}

func TestKeyValueCacheMiss(t *testing.T) {
	t.Parallel()

	c, err := New(mock.NewKVStore(nil), 8)
	require.NoError(t, err)

	var authors []string
	found, err := c.Get(app.KeyAuthors, &authors)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, authors)
}

func TestKeyValueCacheLastWriteWins(t *testing.T) {
	t.Parallel()

	store := mock.NewKVStore(nil)
	c, err := New(store, 8)
	require.NoError(t, err)

	require.NoError(t, c.Set(app.KeyAuthors, []string{"alice"}))
	require.NoError(t, c.Set(app.KeyAuthors, []string{"bob"}))

	var authors []string
	found, err := c.Get(app.KeyAuthors, &authors)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"bob"}, authors)

	// Fresh cache over the same store sees the persisted value.
	c2, err := New(store, 0)
	require.NoError(t, err)
	authors = nil
	found, err = c2.Get(app.KeyAuthors, &authors)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"bob"}, authors)
}

func TestKeyValueCacheMemo(t *testing.T) {
	t.Parallel()

	store := mock.NewKVStore(map[string][]byte{
		app.KeyAuthors: []byte(`["alice"]`),
	})
	c, err := New(store, 8)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var authors []string
		found, err := c.Get(app.KeyAuthors, &authors)
		require.NoError(t, err)
		require.True(t, found)
	}
	assert.Equal(t, 1, store.Reads())

	require.NoError(t, store.DeleteKey([]byte(app.KeyAuthors)))
	c.Forget(app.KeyAuthors)

	var authors []string
	found, err := c.Get(app.KeyAuthors, &authors)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 2, store.Reads())
}

func TestKeyValueCacheStorageErrors(t *testing.T) {
	t.Parallel()

	t.Run("corrupt value", func(t *testing.T) {
		c, err := New(mock.NewKVStore(map[string][]byte{
			app.KeyLastOutliers: []byte(`[{"sha": 12`),
		}), 0)
		require.NoError(t, err)

		var outliers []app.Outlier
		found, err := c.Get(app.KeyLastOutliers, &outliers)
		assert.False(t, found)
		assert.True(t, app.IsStorageError(err))
	})

	t.Run("store read fails", func(t *testing.T) {
		store := mock.NewKVStore(nil)
		store.ReadErr = errors.New("database not open")
		c, err := New(store, 8)
		require.NoError(t, err)

		var authors []string
		found, err := c.Get(app.KeyAuthors, &authors)
		assert.False(t, found)
		assert.True(t, app.IsStorageError(err))
	})

	t.Run("store write fails", func(t *testing.T) {
		store := mock.NewKVStore(nil)
		store.UpdateErr = errors.New("read-only")
		c, err := New(store, 8)
		require.NoError(t, err)

		err = c.Set(app.KeyAuthors, []string{"alice"})
		assert.True(t, app.IsStorageError(err))

		store.UpdateErr = nil
		var authors []string
		found, err := c.Get(app.KeyAuthors, &authors)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unencodable value", func(t *testing.T) {
		c, err := New(mock.NewKVStore(nil), 0)
		require.NoError(t, err)

		err = c.Set(app.KeyAuthors, make(chan int))
		assert.True(t, app.IsStorageError(err))
	})
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(nil, 1)
	assert.Error(t, err)
}
