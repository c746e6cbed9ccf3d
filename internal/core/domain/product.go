package domain

import "time"

type (
	Product struct {
		ID             int
		Name           string
		Brand          string
		Category       string
		Description    string
		Price          float64
		OriginalPrice  float64
		Rating         float64
		ReviewCount    int
		InStock        bool
		IsNew          bool
		Popularity     int
		CreatedAt      time.Time
		Image          string
		Images         []string
		Features       []string
		Tags           []string
		Specifications map[string]string
	}

	Category struct {
		ID    string
		Name  string
		Count int
		Image string
	}
)

// OnSale reports whether the product is discounted from its original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}
