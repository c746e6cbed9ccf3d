package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	t.Run("FetchProducts", func(t *testing.T) {
		p := catalog.NewProvider(0)

		ps, err := p.FetchProducts(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, ps)

		for _, v := range ps {
			assert.NotZero(t, v.ID)
			assert.NotEmpty(t, v.Name)
			assert.NotEmpty(t, v.Images)
			assert.GreaterOrEqual(t, v.OriginalPrice, v.Price)
			assert.GreaterOrEqual(t, v.Rating, 0.0)
			assert.LessOrEqual(t, v.Rating, 5.0)
		}
	})

	t.Run("FetchCategories", func(t *testing.T) {
		p := catalog.NewProvider(0)

		cs, err := p.FetchCategories(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, cs)

		for _, v := range cs {
			assert.NotEmpty(t, v.ID)
			assert.NotEmpty(t, v.Name)
		}
	})

	t.Run("UniqueProductIDs", func(t *testing.T) {
		p := catalog.NewProvider(0)

		ps, err := p.FetchProducts(t.Context())
		require.NoError(t, err)

		seen := make(map[int]bool, len(ps))
		for _, v := range ps {
			assert.False(t, seen[v.ID], "duplicate product id %d", v.ID)
			seen[v.ID] = true
		}
	})

	t.Run("CancelledDuringLatency", func(t *testing.T) {
		p := catalog.NewProvider(time.Minute)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := p.FetchProducts(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
