package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var ErrProductNotFound = errors.New("product not found")

const maxRecentSearches = 5

var _ port.CatalogReader = (*Store)(nil)
var _ port.CartMutator = (*Store)(nil)
var _ port.WishlistMutator = (*Store)(nil)
var _ port.QueryMutator = (*Store)(nil)
var _ port.Notifier = (*Store)(nil)
var _ port.SessionWriter = (*Store)(nil)
var _ port.CartReader = (*Store)(nil)
var _ port.WishlistReader = (*Store)(nil)
var _ port.SearchReader = (*Store)(nil)
var _ port.NotificationReader = (*Store)(nil)
var _ port.SessionReader = (*Store)(nil)
var _ port.LoadingReader = (*Store)(nil)

type StoreConfig struct {
	PageSize        int
	NotificationTTL time.Duration
}

// Store is the single source of truth for one client session. Every
// mutation goes through its method set and runs to completion under one
// lock, so derived values can never be observed mid-update.
type Store struct {
	mu      sync.Mutex
	cfg     StoreConfig
	persist persistence
	sched   port.Scheduler
	now     func() time.Time

	products       []domain.Product
	categories     []domain.Category
	cart           domain.Cart
	wishlist       domain.Wishlist
	filters        domain.FilterCriteria
	sortKey        domain.SortKey
	searchQuery    string
	recentSearches []string
	isLoading      bool
	user           *domain.User
	notifications  []domain.Notification
	lastNotifyID   int64
}

func NewStore(
	cfg StoreConfig, blob port.BlobStore, sched port.Scheduler,
) (*Store, error) {
	const op = "NewStore"

	p, err := newPersistence(blob)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{
		cfg:     cfg,
		persist: p,
		sched:   sched,
		now:     time.Now,
		filters: domain.DefaultFilterCriteria(),
		sortKey: domain.SortFeatured,
	}, nil
}

// Hydrate restores cart, wishlist, user and recent searches from the blob
// store. A corrupt or missing blob leaves the matching slice of state at
// its default; hydration never fails the session.
func (s *Store) Hydrate() {
	const op = "Store.Hydrate"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok, err := s.persist.loadCart(); err != nil {
		log.Warn("skipping cart blob", "err", err)
	} else if ok {
		s.cart = cart
	}

	if wishlist, ok, err := s.persist.loadWishlist(); err != nil {
		log.Warn("skipping wishlist blob", "err", err)
	} else if ok {
		s.wishlist = wishlist
	}

	if user, ok, err := s.persist.loadUser(); err != nil {
		log.Warn("skipping user blob", "err", err)
	} else if ok {
		s.user = &user
	}

	if terms, ok, err := s.persist.loadRecentSearches(); err != nil {
		log.Warn("skipping recent searches blob", "err", err)
	} else if ok {
		if len(terms) > maxRecentSearches {
			terms = terms[:maxRecentSearches]
		}
		s.recentSearches = terms
	}

	log.Debug("state hydrated",
		"cartLines", s.cart.Len(),
		"wishlistItems", s.wishlist.Len(),
		"hasUser", s.user != nil,
	)
}

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = v
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// SetCatalog replaces the product and category sets wholesale.
func (s *Store) SetCatalog(ps []domain.Product, cs []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = ps
	s.categories = cs
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := make([]domain.Product, len(s.products))
	copy(ps, s.products)
	return ps
}

func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := make([]domain.Category, len(s.categories))
	copy(cs, s.categories)
	return cs
}

func (s *Store) ProductByID(id int) (domain.Product, error) {
	const op = "Store.ProductByID"

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: id %d: %w", op, id, ErrProductNotFound)
}

// Listing recomputes the derived product view for the requested page.
func (s *Store) Listing(page int) domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.BuildListing(
		s.products, s.filters, s.sortKey, s.searchQuery, page, s.cfg.PageSize,
	)
}

func (s *Store) AddToCart(p domain.Product, quantity int) error {
	const op = "Store.AddToCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.Add(p, quantity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.persistCart(op)
	s.notifyLocked(domain.NotifySuccess, "Added to Cart",
		fmt.Sprintf("%s has been added to your cart.", p.Name), true)
	return nil
}

func (s *Store) RemoveFromCart(productID int) {
	const op = "Store.RemoveFromCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Remove(productID) {
		return
	}
	s.persistCart(op)
	s.notifyLocked(domain.NotifyInfo, "Removed from Cart",
		"Item has been removed from your cart.", true)
}

// UpdateCartQuantity emits no notification: it fires on every spinner click.
func (s *Store) UpdateCartQuantity(productID, quantity int) {
	const op = "Store.UpdateCartQuantity"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetQuantity(productID, quantity)
	s.persistCart(op)
}

func (s *Store) ClearCart() {
	const op = "Store.ClearCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.persistCart(op)
}

func (s *Store) Cart() domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.View()
}

// ToggleWishlist flips membership and reports the resulting state. The
// notification verb comes from the toggle's own result, inside the same
// critical section, so it can never disagree with the mutation.
func (s *Store) ToggleWishlist(p domain.Product) (added bool) {
	const op = "Store.ToggleWishlist"

	s.mu.Lock()
	defer s.mu.Unlock()

	added = s.wishlist.Toggle(p)
	s.persistWishlist(op)

	if added {
		s.notifyLocked(domain.NotifySuccess, "Added to Wishlist",
			fmt.Sprintf("%s has been added to your wishlist.", p.Name), true)
	} else {
		s.notifyLocked(domain.NotifySuccess, "Removed from Wishlist",
			fmt.Sprintf("%s has been removed from your wishlist.", p.Name), true)
	}
	return added
}

func (s *Store) Wishlist() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}

func (s *Store) InWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

func (s *Store) UpdateFilters(patch domain.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Merge(patch)
}

func (s *Store) Filters() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// UpdateSort stores the key verbatim; an unknown key falls back to the
// featured ordering at read time.
func (s *Store) UpdateSort(key domain.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

func (s *Store) Sort() domain.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

// SetSearchQuery stores the text verbatim; matching is case-insensitive in
// the listing pipeline, not here.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// RecordSearch pushes a term into the recent-search history: de-duplicated,
// most recent first, capped.
func (s *Store) RecordSearch(term string) {
	const op = "Store.RecordSearch"

	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	terms := make([]string, 0, maxRecentSearches)
	terms = append(terms, term)
	for _, t := range s.recentSearches {
		if t == term {
			continue
		}
		terms = append(terms, t)
		if len(terms) == maxRecentSearches {
			break
		}
	}
	s.recentSearches = terms

	if err := s.persist.saveRecentSearches(s.recentSearches); err != nil {
		slog.With("op", op).Warn("failed to persist recent searches", "err", err)
	}
}

func (s *Store) RecentSearches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	terms := make([]string, len(s.recentSearches))
	copy(terms, s.recentSearches)
	return terms
}

func (s *Store) AddNotification(
	t domain.NotificationType, title, message string, autoHide bool,
) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifyLocked(t, title, message, autoHide)
}

func (s *Store) RemoveNotification(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeNotificationLocked(id)
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := make([]domain.Notification, len(s.notifications))
	copy(ns, s.notifications)
	return ns
}

// SetUser replaces the session user. A non-nil user is persisted, nil
// removes the stored blob.
func (s *Store) SetUser(u *domain.User) {
	const op = "Store.SetUser"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	if u != nil {
		if err := s.persist.saveUser(*u); err != nil {
			log.Warn("failed to persist user", "err", err)
		}
		return
	}
	if err := s.persist.removeUser(); err != nil {
		log.Warn("failed to remove user blob", "err", err)
	}
}

func (s *Store) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// notifyLocked appends a notification and schedules its expiry. Caller
// holds s.mu. IDs are unix-milli based, bumped on collision to stay
// strictly monotonic.
func (s *Store) notifyLocked(
	t domain.NotificationType, title, message string, autoHide bool,
) int64 {
	id := s.now().UnixMilli()
	if id <= s.lastNotifyID {
		id = s.lastNotifyID + 1
	}
	s.lastNotifyID = id

	s.notifications = append(s.notifications, domain.Notification{
		ID:       id,
		Type:     t,
		Title:    title,
		Message:  message,
		AutoHide: autoHide,
	})

	if autoHide && s.sched != nil {
		s.sched.Schedule(s.cfg.NotificationTTL, func() {
			s.RemoveNotification(id)
		})
	}
	return id
}

// removeNotificationLocked is a no-op for ids already gone, so an expiry
// racing an explicit dismiss is harmless.
func (s *Store) removeNotificationLocked(id int64) {
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

func (s *Store) persistCart(op string) {
	if err := s.persist.saveCart(s.cart); err != nil {
		slog.With("op", op).Warn("failed to persist cart", "err", err)
	}
}

func (s *Store) persistWishlist(op string) {
	if err := s.persist.saveWishlist(s.wishlist); err != nil {
		slog.With("op", op).Warn("failed to persist wishlist", "err", err)
	}
}
