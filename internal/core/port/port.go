package port

import (
	"context"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

// BlobStore is the local key-value persistence facility. A missing key is
// reported as ok=false, not an error.
type BlobStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// CatalogProvider supplies the immutable product and category sets.
type CatalogProvider interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchCategories(context.Context) ([]domain.Category, error)
}

// Scheduler runs fn once after d. The returned function cancels the task;
// cancelling after the task ran is a no-op.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

type CatalogReader interface {
	Products() []domain.Product
	Categories() []domain.Category
	ProductByID(id int) (domain.Product, error)
	Listing(page int) domain.Listing
}

type CartMutator interface {
	AddToCart(p domain.Product, quantity int) error
	RemoveFromCart(productID int)
	UpdateCartQuantity(productID, quantity int)
	ClearCart()
}

type WishlistMutator interface {
	ToggleWishlist(p domain.Product) (added bool)
}

type QueryMutator interface {
	UpdateFilters(patch domain.FilterPatch)
	UpdateSort(key domain.SortKey)
	SetSearchQuery(query string)
	RecordSearch(term string)
}

type Notifier interface {
	AddNotification(t domain.NotificationType, title, message string, autoHide bool) int64
	RemoveNotification(id int64)
}

type SessionWriter interface {
	SetUser(u *domain.User)
}

type SessionReader interface {
	User() (domain.User, bool)
}

type CartReader interface {
	Cart() domain.CartView
}

type WishlistReader interface {
	Wishlist() []domain.Product
	InWishlist(productID int) bool
}

type SearchReader interface {
	RecentSearches() []string
}

type NotificationReader interface {
	Notifications() []domain.Notification
}

type LoadingReader interface {
	IsLoading() bool
}

type CheckoutService interface {
	Quote(promoCode string) (domain.OrderSummary, error)
	PlaceOrder(
		shipping domain.ShippingInfo,
		payment domain.PaymentInfo,
		promoCode string,
	) (domain.Order, error)
}

type SessionService interface {
	Login(domain.Credentials) (domain.User, error)
	Register(domain.Registration) (domain.User, error)
	Logout()
}
