package domain

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// Listing is the derived view of the catalog after filtering, sorting and
// pagination.
type Listing struct {
	Products     []Product
	TotalMatched int
	Page         int
	PageSize     int
	TotalPages   int
}

// BuildListing recomputes the visible product sequence from scratch. It is
// referentially transparent: same inputs, same ordered output. Ties under
// every sort key keep catalog order (stable sort), so repeated calls are
// deterministic.
//
// Page index is 1-based; a page beyond the last yields an empty slice.
func BuildListing(
	catalog []Product,
	criteria FilterCriteria,
	key SortKey,
	query string,
	page, pageSize int,
) Listing {
	filtered := make([]Product, 0, len(catalog))
	q := strings.ToLower(query)
	for _, p := range catalog {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if !criteria.Matches(p) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, comparator(key, filtered))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start, end = 0, 0
	} else if end > len(filtered) {
		end = len(filtered)
	}

	return Listing{
		Products:     filtered[start:end],
		TotalMatched: len(filtered),
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}

func matchesQuery(p Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func comparator(key SortKey, ps []Product) func(i, j int) bool {
	switch key {
	case SortPriceLow:
		return func(i, j int) bool { return ps[i].Price < ps[j].Price }
	case SortPriceHigh:
		return func(i, j int) bool { return ps[i].Price > ps[j].Price }
	case SortRating:
		return func(i, j int) bool { return ps[i].Rating > ps[j].Rating }
	case SortNewest:
		return func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) }
	case SortNameAsc:
		return func(i, j int) bool { return ps[i].Name < ps[j].Name }
	case SortNameDesc:
		return func(i, j int) bool { return ps[i].Name > ps[j].Name }
	default:
		// featured, and any unknown key
		return func(i, j int) bool { return ps[i].Popularity > ps[j].Popularity }
	}
}
