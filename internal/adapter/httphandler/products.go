package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/products?q=&category=&price_min=&price_max=&rating=&in_stock=&on_sale=&brands=&sort=&page= (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/categories (200 OK)

type ProductsHandler struct {
	catalog port.CatalogReader
	query   port.QueryMutator
	loading port.LoadingReader
}

func RegisterProducts(
	mux *http.ServeMux,
	catalog port.CatalogReader,
	query port.QueryMutator,
	loading port.LoadingReader,
) {
	h := ProductsHandler{catalog, query, loading}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

// GetProducts applies the request's criteria to the store and returns the
// recomputed listing. Absent parameters leave the stored criteria as-is,
// mirroring the partial-update semantics of filter changes.
func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	q := r.URL.Query()

	patch, err := filterPatchFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Warn("invalid filter params", "err", err)
		return
	}
	h.query.UpdateFilters(patch)

	if q.Has("sort") {
		h.query.UpdateSort(domain.SortKey(q.Get("sort")))
	}
	if q.Has("q") {
		h.query.SetSearchQuery(q.Get("q"))
	}

	page := 1
	if q.Has("page") {
		page, err = strconv.Atoi(q.Get("page"))
		if err != nil || page < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
	}

	listing := h.catalog.Listing(page)
	writeJSON(w, log, Listing{
		Products:     toAPIProducts(listing.Products),
		TotalMatched: listing.TotalMatched,
		Page:         listing.Page,
		PageSize:     listing.PageSize,
		TotalPages:   listing.TotalPages,
		IsLoading:    h.loading.IsLoading(),
	})
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.ProductByID(id)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		log.Debug("product lookup missed", "id", id)
		return
	}
	writeJSON(w, log, toAPIProduct(p))
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetCategories"
	log := slog.With("op", op)

	cs := h.catalog.Categories()
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, Category(c))
	}
	writeJSON(w, log, out)
}

func filterPatchFromQuery(q map[string][]string) (domain.FilterPatch, error) {
	var patch domain.FilterPatch
	get := func(key string) (string, bool) {
		vs, ok := q[key]
		if !ok || len(vs) == 0 {
			return "", false
		}
		return vs[0], true
	}

	if v, ok := get("category"); ok {
		patch.Category = &v
	}

	minStr, hasMin := get("price_min")
	maxStr, hasMax := get("price_max")
	if hasMin || hasMax {
		pr := domain.PriceRange{Min: 0, Max: 1000}
		var err error
		if hasMin {
			if pr.Min, err = strconv.ParseFloat(minStr, 64); err != nil {
				return patch, errors.New("invalid price_min")
			}
		}
		if hasMax {
			if pr.Max, err = strconv.ParseFloat(maxStr, 64); err != nil {
				return patch, errors.New("invalid price_max")
			}
		}
		if pr.Min > pr.Max {
			return patch, errors.New("price_min exceeds price_max")
		}
		patch.PriceRange = &pr
	}

	if v, ok := get("rating"); ok {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return patch, errors.New("invalid rating")
		}
		patch.Rating = &rating
	}

	if v, ok := get("in_stock"); ok {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return patch, errors.New("invalid in_stock")
		}
		patch.InStock = &inStock
	}

	if v, ok := get("on_sale"); ok {
		onSale, err := strconv.ParseBool(v)
		if err != nil {
			return patch, errors.New("invalid on_sale")
		}
		patch.OnSale = &onSale
	}

	if v, ok := get("brands"); ok {
		if v == "" {
			patch.Brands = []string{}
		} else {
			patch.Brands = strings.Split(v, ",")
		}
	}

	return patch, nil
}
