package domain

// Wishlist is a set of products keyed by product id, kept in insertion order.
type Wishlist struct {
	items []Product
}

// NewWishlist builds a wishlist from restored products, skipping duplicates.
func NewWishlist(items []Product) Wishlist {
	var w Wishlist
	for _, p := range items {
		if !w.Contains(p.ID) {
			w.items = append(w.items, p)
		}
	}
	return w
}

// Toggle adds the product if absent and removes it if present. It reports
// whether the product is a member after the call.
func (w *Wishlist) Toggle(p Product) (added bool) {
	for i, item := range w.items {
		if item.ID == p.ID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return false
		}
	}
	w.items = append(w.items, p)
	return true
}

func (w Wishlist) Contains(productID int) bool {
	for _, p := range w.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (w Wishlist) Items() []Product {
	items := make([]Product, len(w.items))
	copy(items, w.items)
	return items
}

func (w Wishlist) Len() int {
	return len(w.items)
}
