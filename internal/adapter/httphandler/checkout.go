package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/checkout/quote JSON {"promo_code" string} (200 OK, 400 Bad request)
// POST v1/checkout/orders JSON (201 Created, 400 Bad request, 409 Conflict, 422 Unprocessable entity)

type CheckoutHandler struct {
	checkout port.CheckoutService
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutService) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout/quote", h.Quote)
	mux.HandleFunc("POST /v1/checkout/orders", h.PlaceOrder)
}

func (h CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Quote"
	log := slog.With("op", op)

	var req QuoteRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON data", http.StatusBadRequest)
			log.Warn("failed to parse JSON", "err", err)
			return
		}
	}

	summary, err := h.checkout.Quote(req.PromoCode)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPromoCode) {
			http.Error(w, "unknown promo code", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to quote", http.StatusInternalServerError)
		log.Error("quote failed", "err", err)
		return
	}
	writeJSON(w, log, toAPISummary(summary))
}

func (h CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PlaceOrder"
	log := slog.With("op", op)

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	order, err := h.checkout.PlaceOrder(
		domain.ShippingInfo(req.Shipping),
		domain.PaymentInfo(req.Payment),
		req.PromoCode,
	)
	if err != nil {
		switch {
		case writeFieldErrors(w, log, err):
		case errors.Is(err, domain.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		case errors.Is(err, domain.ErrUnknownPromoCode):
			http.Error(w, "unknown promo code", http.StatusBadRequest)
		default:
			http.Error(w, "failed to place order", http.StatusInternalServerError)
			log.Error("order failed", "err", err)
		}
		return
	}

	lines := make([]CartLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, CartLine(l))
	}
	writeJSONStatus(w, log, http.StatusCreated, Order{
		ID:       order.ID,
		Lines:    lines,
		Summary:  toAPISummary(order.Summary),
		PlacedAt: order.PlacedAt.UTC().Format(time.RFC3339),
	})
	log.Info("order accepted", "orderID", order.ID)
}
