package service

import (
	"fmt"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

const (
	blobKeyCart           = "cart"
	blobKeyWishlist       = "wishlist"
	blobKeyUser           = "user"
	blobKeyRecentSearches = "recentSearches"
)

// persistence writes state snapshots through the blob store using the
// versioned avro serdes.
type persistence struct {
	blob          port.BlobStore
	cartSerde     schema.Serde
	wishlistSerde schema.Serde
	userSerde     schema.Serde
	searchesSerde schema.Serde
}

func newPersistence(blob port.BlobStore) (persistence, error) {
	const op = "newPersistence"

	cartSerde, err := schema.NewSerdeCartSnapshotV1()
	if err != nil {
		return persistence{}, fmt.Errorf("%s: %w", op, err)
	}
	wishlistSerde, err := schema.NewSerdeWishlistSnapshotV1()
	if err != nil {
		return persistence{}, fmt.Errorf("%s: %w", op, err)
	}
	userSerde, err := schema.NewSerdeUserV1()
	if err != nil {
		return persistence{}, fmt.Errorf("%s: %w", op, err)
	}
	searchesSerde, err := schema.NewSerdeRecentSearchesV1()
	if err != nil {
		return persistence{}, fmt.Errorf("%s: %w", op, err)
	}

	return persistence{blob, cartSerde, wishlistSerde, userSerde, searchesSerde}, nil
}

func (p persistence) saveCart(c domain.Cart) error {
	lines := c.Lines()
	snapshot := schema.CartSnapshotV1{
		Lines: make([]schema.CartLineV1, 0, len(lines)),
	}
	for _, l := range lines {
		snapshot.Lines = append(snapshot.Lines, schema.CartLineV1{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	return p.save(blobKeyCart, p.cartSerde, snapshot)
}

func (p persistence) loadCart() (domain.Cart, bool, error) {
	var snapshot schema.CartSnapshotV1
	ok, err := p.load(blobKeyCart, p.cartSerde, &snapshot)
	if err != nil || !ok {
		return domain.Cart{}, false, err
	}

	lines := make([]domain.CartLine, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		lines = append(lines, domain.CartLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	return domain.NewCart(lines), true, nil
}

func (p persistence) saveWishlist(w domain.Wishlist) error {
	items := w.Items()
	snapshot := schema.WishlistSnapshotV1{
		Items: make([]schema.WishlistItemV1, 0, len(items)),
	}
	for _, item := range items {
		snapshot.Items = append(snapshot.Items, schema.WishlistItemV1{
			ProductID:     item.ID,
			Name:          item.Name,
			Brand:         item.Brand,
			Category:      item.Category,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Rating:        item.Rating,
			ReviewCount:   item.ReviewCount,
			InStock:       item.InStock,
			Image:         item.Image,
		})
	}
	return p.save(blobKeyWishlist, p.wishlistSerde, snapshot)
}

func (p persistence) loadWishlist() (domain.Wishlist, bool, error) {
	var snapshot schema.WishlistSnapshotV1
	ok, err := p.load(blobKeyWishlist, p.wishlistSerde, &snapshot)
	if err != nil || !ok {
		return domain.Wishlist{}, false, err
	}

	items := make([]domain.Product, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, domain.Product{
			ID:            item.ProductID,
			Name:          item.Name,
			Brand:         item.Brand,
			Category:      item.Category,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Rating:        item.Rating,
			ReviewCount:   item.ReviewCount,
			InStock:       item.InStock,
			Image:         item.Image,
		})
	}
	return domain.NewWishlist(items), true, nil
}

func (p persistence) saveUser(u domain.User) error {
	return p.save(blobKeyUser, p.userSerde, schema.UserV1{
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Avatar:     u.Avatar,
		JoinedAtMS: u.JoinedAt.UnixMilli(),
	})
}

func (p persistence) loadUser() (domain.User, bool, error) {
	var v schema.UserV1
	ok, err := p.load(blobKeyUser, p.userSerde, &v)
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	return domain.User{
		ID:       v.UserID,
		Name:     v.Name,
		Email:    v.Email,
		Avatar:   v.Avatar,
		JoinedAt: time.UnixMilli(v.JoinedAtMS),
	}, true, nil
}

func (p persistence) removeUser() error {
	return p.blob.Remove(blobKeyUser)
}

func (p persistence) saveRecentSearches(terms []string) error {
	return p.save(
		blobKeyRecentSearches, p.searchesSerde,
		schema.RecentSearchesV1{Terms: terms},
	)
}

func (p persistence) loadRecentSearches() ([]string, bool, error) {
	var v schema.RecentSearchesV1
	ok, err := p.load(blobKeyRecentSearches, p.searchesSerde, &v)
	if err != nil || !ok {
		return nil, false, err
	}
	return v.Terms, true, nil
}

func (p persistence) save(key string, serde schema.Serde, v any) error {
	data, err := serde.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := p.blob.Set(key, data); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (p persistence) load(key string, serde schema.Serde, v any) (bool, error) {
	data, ok, err := p.blob.Get(key)
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := serde.Decode(data, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}
