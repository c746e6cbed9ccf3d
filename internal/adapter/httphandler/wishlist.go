package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/wishlist (200 OK)
// POST v1/wishlist/{id}/toggle (200 OK, 404 Not found)

type WishlistHandler struct {
	wishlist port.WishlistMutator
	reader   port.WishlistReader
	catalog  port.CatalogReader
}

func RegisterWishlist(
	mux *http.ServeMux,
	wishlist port.WishlistMutator,
	reader port.WishlistReader,
	catalog port.CatalogReader,
) {
	h := WishlistHandler{wishlist, reader, catalog}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/{id}/toggle", h.Toggle)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetWishlist"
	log := slog.With("op", op)

	writeJSON(w, log, toAPIProducts(h.reader.Wishlist()))
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Toggle"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.ProductByID(id)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("unknown product", "id", id)
		return
	}

	added := h.wishlist.ToggleWishlist(p)
	writeJSON(w, log, struct {
		InWishlist bool `json:"in_wishlist"`
	}{added})
	log.Info("wishlist toggled", "productID", id, "inWishlist", added)
}
