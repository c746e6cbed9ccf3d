package domain

const CategoryAll = "all"

type PriceRange struct {
	Min float64
	Max float64
}

// FilterCriteria narrows which products appear in a listing. Zero values
// mean "no constraint" for every field except PriceRange, which always
// applies as an inclusive bound.
type FilterCriteria struct {
	Category   string
	PriceRange PriceRange
	Rating     float64
	InStock    bool
	OnSale     bool
	Brands     []string
}

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{PriceRange: PriceRange{Min: 0, Max: 1000}}
}

// FilterPatch is a partial update of FilterCriteria. Nil fields leave the
// existing value untouched; Brands distinguishes nil (untouched) from an
// empty slice (clear the constraint).
type FilterPatch struct {
	Category   *string
	PriceRange *PriceRange
	Rating     *float64
	InStock    *bool
	OnSale     *bool
	Brands     []string
}

// Merge applies the patch onto c and returns the result.
func (c FilterCriteria) Merge(p FilterPatch) FilterCriteria {
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.PriceRange != nil {
		c.PriceRange = *p.PriceRange
	}
	if p.Rating != nil {
		c.Rating = *p.Rating
	}
	if p.InStock != nil {
		c.InStock = *p.InStock
	}
	if p.OnSale != nil {
		c.OnSale = *p.OnSale
	}
	if p.Brands != nil {
		brands := make([]string, len(p.Brands))
		copy(brands, p.Brands)
		c.Brands = brands
	}
	return c
}

// Matches reports whether the product passes every active constraint.
func (c FilterCriteria) Matches(p Product) bool {
	if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if p.Price < c.PriceRange.Min || p.Price > c.PriceRange.Max {
		return false
	}
	if c.Rating > 0 && p.Rating < c.Rating {
		return false
	}
	if c.InStock && !p.InStock {
		return false
	}
	if c.OnSale && !p.OnSale() {
		return false
	}
	if len(c.Brands) > 0 {
		found := false
		for _, b := range c.Brands {
			if p.Brand == b {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
