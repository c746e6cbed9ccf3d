package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrUnknownPromoCode = errors.New("unknown promo code")
	ErrEmptyCart        = errors.New("cart is empty")
)

type ShippingInfo struct {
	Email     string
	FirstName string
	LastName  string
	Address   string
	City      string
	Country   string
	ZipCode   string
}

func (s ShippingInfo) Validate() error {
	errs := FieldErrors{}
	if s.Email == "" {
		errs["email"] = "email is required"
	} else if !emailRe.MatchString(s.Email) {
		errs["email"] = "email is invalid"
	}
	required := map[string]string{
		"firstName": s.FirstName,
		"lastName":  s.LastName,
		"address":   s.Address,
		"city":      s.City,
		"country":   s.Country,
		"zipCode":   s.ZipCode,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			errs[field] = field + " is required"
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

type PaymentInfo struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

func (p PaymentInfo) Validate() error {
	errs := FieldErrors{}
	if !cardNumberRe.MatchString(strings.ReplaceAll(p.CardNumber, " ", "")) {
		errs["cardNumber"] = "card number must be 16 digits"
	}
	if !expiryRe.MatchString(p.ExpiryDate) {
		errs["expiryDate"] = "expiry date must be MM/YY"
	}
	if !cvvRe.MatchString(p.CVV) {
		errs["cvv"] = "cvv must be 3 or 4 digits"
	}
	if strings.TrimSpace(p.NameOnCard) == "" {
		errs["nameOnCard"] = "name on card is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PricingRules hold the checkout pricing policy.
type PricingRules struct {
	TaxRate          float64
	FreeShippingOver float64
	ShippingFee      float64
	PromoCodes       map[string]float64 // code -> percent off subtotal
}

type OrderSummary struct {
	Subtotal  float64
	Tax       float64
	Shipping  float64
	Discount  float64
	Total     float64
	PromoCode string
}

// Quote prices a subtotal under the rules. An empty promo code means no
// discount; an unrecognized one returns ErrUnknownPromoCode.
func (r PricingRules) Quote(subtotal float64, promoCode string) (OrderSummary, error) {
	s := OrderSummary{Subtotal: subtotal}

	if promoCode != "" {
		percent, ok := r.PromoCodes[strings.ToUpper(promoCode)]
		if !ok {
			return OrderSummary{}, fmt.Errorf("%q: %w", promoCode, ErrUnknownPromoCode)
		}
		s.PromoCode = strings.ToUpper(promoCode)
		s.Discount = subtotal * percent / 100
	}

	s.Tax = (subtotal - s.Discount) * r.TaxRate
	if subtotal > r.FreeShippingOver {
		s.Shipping = 0
	} else {
		s.Shipping = r.ShippingFee
	}
	s.Total = subtotal - s.Discount + s.Tax + s.Shipping
	return s, nil
}

type Order struct {
	ID       string
	Lines    []CartLine
	Shipping ShippingInfo
	Summary  OrderSummary
	PlacedAt time.Time
}
