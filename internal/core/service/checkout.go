package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CheckoutService = Checkout{}

// Checkout drives the shipping -> payment -> review flow over the store's
// cart and prices orders under the configured rules.
type Checkout struct {
	store *Store
	rules domain.PricingRules
	now   func() time.Time
}

func NewCheckout(store *Store, rules domain.PricingRules) Checkout {
	return Checkout{store: store, rules: rules, now: time.Now}
}

// Quote prices the current cart, optionally applying a promo code. An
// unknown code surfaces an error notification and keeps the cart priced
// without a discount on the caller's side.
func (c Checkout) Quote(promoCode string) (domain.OrderSummary, error) {
	const op = "Checkout.Quote"

	summary, err := c.rules.Quote(c.store.Cart().Total, promoCode)
	if err != nil {
		c.store.AddNotification(
			domain.NotifyError, "Invalid Promo Code",
			fmt.Sprintf("Promo code %q is not recognized.", promoCode), true,
		)
		return domain.OrderSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	return summary, nil
}

// PlaceOrder validates the shipping and payment steps, prices the cart and
// turns it into an order. The cart empties only on success.
func (c Checkout) PlaceOrder(
	shipping domain.ShippingInfo,
	payment domain.PaymentInfo,
	promoCode string,
) (domain.Order, error) {
	const op = "Checkout.PlaceOrder"
	log := slog.With("op", op)

	cart := c.store.Cart()
	if len(cart.Lines) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	if err := shipping.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: shipping: %w", op, err)
	}
	if err := payment.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: payment: %w", op, err)
	}

	summary, err := c.rules.Quote(cart.Total, promoCode)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	placedAt := c.now()
	order := domain.Order{
		ID:       fmt.Sprintf("ORD-%d", placedAt.UnixMilli()),
		Lines:    cart.Lines,
		Shipping: shipping,
		Summary:  summary,
		PlacedAt: placedAt,
	}

	c.store.ClearCart()
	c.store.AddNotification(
		domain.NotifySuccess, "Order Placed!",
		"Your order has been placed successfully.", true,
	)

	log.Info("order placed", "orderID", order.ID, "total", summary.Total)
	return order, nil
}
