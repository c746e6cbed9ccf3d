package httphandler

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	Product struct {
		ID             int               `json:"id"`
		Name           string            `json:"name"`
		Brand          string            `json:"brand"`
		Category       string            `json:"category"`
		Description    string            `json:"description"`
		Price          float64           `json:"price"`
		OriginalPrice  float64           `json:"original_price"`
		Rating         float64           `json:"rating"`
		ReviewCount    int               `json:"review_count"`
		InStock        bool              `json:"in_stock"`
		IsNew          bool              `json:"is_new"`
		OnSale         bool              `json:"on_sale"`
		Image          string            `json:"image"`
		Images         []string          `json:"images"`
		Features       []string          `json:"features"`
		Tags           []string          `json:"tags"`
		Specifications map[string]string `json:"specifications"`
	}

	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Count int    `json:"count"`
		Image string `json:"image"`
	}

	Listing struct {
		Products     []Product `json:"products"`
		TotalMatched int       `json:"total_matched"`
		Page         int       `json:"page"`
		PageSize     int       `json:"page_size"`
		TotalPages   int       `json:"total_pages"`
		IsLoading    bool      `json:"is_loading"`
	}

	CartLine struct {
		ProductID int     `json:"product_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	}

	CartView struct {
		Lines     []CartLine `json:"lines"`
		Total     float64    `json:"total"`
		ItemCount int        `json:"item_count"`
	}

	Notification struct {
		ID       int64  `json:"id"`
		Type     string `json:"type"`
		Title    string `json:"title"`
		Message  string `json:"message"`
		AutoHide bool   `json:"auto_hide"`
	}

	User struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar"`
		JoinedAt string `json:"joined_at"`
	}
)

type (
	AddCartItemRequest struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	SearchRequest struct {
		Query string `json:"query"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	ShippingInfo struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Address   string `json:"address"`
		City      string `json:"city"`
		Country   string `json:"country"`
		ZipCode   string `json:"zip_code"`
	}

	PaymentInfo struct {
		CardNumber string `json:"card_number"`
		ExpiryDate string `json:"expiry_date"`
		CVV        string `json:"cvv"`
		NameOnCard string `json:"name_on_card"`
	}

	QuoteRequest struct {
		PromoCode string `json:"promo_code"`
	}

	PlaceOrderRequest struct {
		Shipping  ShippingInfo `json:"shipping"`
		Payment   PaymentInfo  `json:"payment"`
		PromoCode string       `json:"promo_code"`
	}

	OrderSummary struct {
		Subtotal  float64 `json:"subtotal"`
		Tax       float64 `json:"tax"`
		Shipping  float64 `json:"shipping"`
		Discount  float64 `json:"discount"`
		Total     float64 `json:"total"`
		PromoCode string  `json:"promo_code,omitempty"`
	}

	Order struct {
		ID       string       `json:"id"`
		Lines    []CartLine   `json:"lines"`
		Summary  OrderSummary `json:"summary"`
		PlacedAt string       `json:"placed_at"`
	}

	FieldErrorsResponse struct {
		Errors map[string]string `json:"errors"`
	}
)

func toAPIProduct(p domain.Product) Product {
	return Product{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Description:    p.Description,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		InStock:        p.InStock,
		IsNew:          p.IsNew,
		OnSale:         p.OnSale(),
		Image:          p.Image,
		Images:         p.Images,
		Features:       p.Features,
		Tags:           p.Tags,
		Specifications: p.Specifications,
	}
}

func toAPIProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toAPIProduct(p))
	}
	return out
}

func toAPICartView(v domain.CartView) CartView {
	lines := make([]CartLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLine(l))
	}
	return CartView{Lines: lines, Total: v.Total, ItemCount: v.ItemCount}
}

func toAPIUser(u domain.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		JoinedAt: u.JoinedAt.Format(time.RFC3339),
	}
}

func toAPISummary(s domain.OrderSummary) OrderSummary {
	return OrderSummary{
		Subtotal:  s.Subtotal,
		Tax:       s.Tax,
		Shipping:  s.Shipping,
		Discount:  s.Discount,
		Total:     s.Total,
		PromoCode: s.PromoCode,
	}
}
