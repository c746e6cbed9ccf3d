package schema_test

import (
	"testing"

	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerdeCartSnapshotV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeCartSnapshotV1()
		require.NoError(t, err)

		snapshot1 := schema.CartSnapshotV1{
			Lines: []schema.CartLineV1{
				{ProductID: 1, Name: "testProduct1", Price: 129.99, Quantity: 2},
				{ProductID: 4, Name: "testProduct4", Price: 39.99, Quantity: 1},
			},
		}

		encodedData, err := serde.Encode(snapshot1)
		require.NoError(t, err)

		var snapshot2 schema.CartSnapshotV1
		err = serde.Decode(encodedData, &snapshot2)
		require.NoError(t, err)

		require.Len(t, snapshot2.Lines, len(snapshot1.Lines))
		for i, l := range snapshot2.Lines {
			assert.Equal(t, snapshot1.Lines[i], l)
		}
	})

	t.Run("EmptyBlob", func(t *testing.T) {
		serde, err := schema.NewSerdeCartSnapshotV1()
		require.NoError(t, err)

		var snapshot schema.CartSnapshotV1
		err = serde.Decode(nil, &snapshot)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTruncatedData)
	})

	t.Run("ForeignVersion", func(t *testing.T) {
		serde, err := schema.NewSerdeCartSnapshotV1()
		require.NoError(t, err)

		encodedData, err := serde.Encode(schema.CartSnapshotV1{})
		require.NoError(t, err)
		encodedData[0] = 42

		var snapshot schema.CartSnapshotV1
		err = serde.Decode(encodedData, &snapshot)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrUnknownVersion)
	})
}

func TestSerdeWishlistSnapshotV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeWishlistSnapshotV1()
		require.NoError(t, err)

		snapshot1 := schema.WishlistSnapshotV1{
			Items: []schema.WishlistItemV1{
				{
					ProductID:     2,
					Name:          "testProduct2",
					Brand:         "testBrand",
					Category:      "electronics",
					Price:         249.99,
					OriginalPrice: 299.99,
					Rating:        4.8,
					ReviewCount:   89,
					InStock:       true,
					Image:         "imageURL",
				},
			},
		}

		encodedData, err := serde.Encode(snapshot1)
		require.NoError(t, err)

		var snapshot2 schema.WishlistSnapshotV1
		err = serde.Decode(encodedData, &snapshot2)
		require.NoError(t, err)

		require.Len(t, snapshot2.Items, 1)
		assert.Equal(t, snapshot1.Items[0], snapshot2.Items[0])
	})
}

func TestSerdeUserV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeUserV1()
		require.NoError(t, err)

		user1 := schema.UserV1{
			UserID:     1,
			Name:       "John Doe",
			Email:      "john@example.com",
			Avatar:     "JD",
			JoinedAtMS: 1705276800000,
		}

		encodedData, err := serde.Encode(user1)
		require.NoError(t, err)

		var user2 schema.UserV1
		err = serde.Decode(encodedData, &user2)
		require.NoError(t, err)
		assert.Equal(t, user1, user2)
	})
}

func TestSerdeRecentSearchesV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeRecentSearchesV1()
		require.NoError(t, err)

		searches1 := schema.RecentSearchesV1{
			Terms: []string{"headphones", "coffee", "camera"},
		}

		encodedData, err := serde.Encode(searches1)
		require.NoError(t, err)

		var searches2 schema.RecentSearchesV1
		err = serde.Decode(encodedData, &searches2)
		require.NoError(t, err)
		assert.Equal(t, searches1.Terms, searches2.Terms)
	})
}
