// Package catalog serves the embedded mock catalog with simulated fetch
// latency, standing in for a remote catalog service.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

//go:embed data/products.json
var productsJSON []byte

//go:embed data/categories.json
var categoriesJSON []byte

var _ port.CatalogProvider = Provider{}

type Provider struct {
	latency time.Duration
}

func NewProvider(latency time.Duration) Provider {
	return Provider{latency}
}

func (p Provider) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Provider.FetchProducts"

	if err := p.simulateLatency(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []productRecord
	if err := json.Unmarshal(productsJSON, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(records))
	for _, r := range records {
		ps = append(ps, r.toDomain())
	}
	return ps, nil
}

func (p Provider) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Provider.FetchCategories"

	if err := p.simulateLatency(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []categoryRecord
	if err := json.Unmarshal(categoriesJSON, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, 0, len(records))
	for _, r := range records {
		cs = append(cs, domain.Category{
			ID:    r.ID,
			Name:  r.Name,
			Count: r.Count,
			Image: r.Image,
		})
	}
	return cs, nil
}

func (p Provider) simulateLatency(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type productRecord struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	InStock        bool              `json:"inStock"`
	IsNew          bool              `json:"isNew"`
	Popularity     int               `json:"popularity"`
	CreatedAt      time.Time         `json:"createdAt"`
	Features       []string          `json:"features"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
	Tags           []string          `json:"tags"`
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:             r.ID,
		Name:           r.Name,
		Brand:          r.Brand,
		Category:       r.Category,
		Description:    r.Description,
		Price:          r.Price,
		OriginalPrice:  r.OriginalPrice,
		Rating:         r.Rating,
		ReviewCount:    r.ReviewCount,
		InStock:        r.InStock,
		IsNew:          r.IsNew,
		Popularity:     r.Popularity,
		CreatedAt:      r.CreatedAt,
		Image:          r.Image,
		Images:         r.Images,
		Features:       r.Features,
		Tags:           r.Tags,
		Specifications: r.Specifications,
	}
}

type categoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Image string `json:"image"`
}
