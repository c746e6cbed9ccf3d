package blobstore_test

import (
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *blobstore.LevelDB {
	t.Helper()
	s, err := blobstore.New(filepath.Join(t.TempDir(), "blobs"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestLevelDB(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		s := openStore(t)

		value, ok, err := s.Get("cart")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("SetGet", func(t *testing.T) {
		s := openStore(t)

		require.NoError(t, s.Set("cart", []byte("payload")))

		value, ok, err := s.Get("cart")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("payload"), value)
	})

	t.Run("Overwrite", func(t *testing.T) {
		s := openStore(t)

		require.NoError(t, s.Set("user", []byte("first")))
		require.NoError(t, s.Set("user", []byte("second")))

		value, ok, err := s.Get("user")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("second"), value)
	})

	t.Run("Remove", func(t *testing.T) {
		s := openStore(t)

		require.NoError(t, s.Set("wishlist", []byte("payload")))
		require.NoError(t, s.Remove("wishlist"))

		_, ok, err := s.Get("wishlist")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RemoveAbsent", func(t *testing.T) {
		s := openStore(t)
		require.NoError(t, s.Remove("unknown"))
	})
}
