package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"product_id" int, "quantity" int} (201 Created, 400 Bad request, 404 Not found)
// PUT v1/cart/items/{id} JSON {"quantity" int} (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id} (200 OK)
// DELETE v1/cart (200 OK)

type CartHandler struct {
	cart    port.CartMutator
	reader  port.CartReader
	catalog port.CatalogReader
}

func RegisterCart(
	mux *http.ServeMux,
	cart port.CartMutator,
	reader port.CartReader,
	catalog port.CatalogReader,
) {
	h := CartHandler{cart, reader, catalog}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.Clear)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	writeJSON(w, log, toAPICartView(h.reader.Cart()))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("unknown product", "id", req.ProductID)
		return
	}

	if err := h.cart.AddToCart(p, req.Quantity); err != nil {
		http.Error(w, "quantity must be positive", http.StatusBadRequest)
		log.Warn("rejected cart add", "err", err)
		return
	}

	writeJSONStatus(w, log, http.StatusCreated, toAPICartView(h.reader.Cart()))
	log.Info("cart item added", "productID", req.ProductID, "quantity", req.Quantity)
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.cart.UpdateCartQuantity(productID, req.Quantity)
	writeJSON(w, log, toAPICartView(h.reader.Cart()))
}

// RemoveItem is a no-op for absent lines, matching the store semantics.
func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.cart.RemoveFromCart(productID)
	writeJSON(w, log, toAPICartView(h.reader.Cart()))
}

func (h CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.Clear"
	log := slog.With("op", op)

	h.cart.ClearCart()
	writeJSON(w, log, toAPICartView(h.reader.Cart()))
}
