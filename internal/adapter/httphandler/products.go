package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

// categories is the fixed storefront navigation set; products only use
// a subset of it.
var categories = []string{
	"AI Tools", "Software & Apps", "Graphics Tools", "Streaming Tools",
	"Premium VPN", "Productivity Tools", "Writing Tools", "Marketing Tools",
	"Educational Tools",
}

const relatedLimit = 3

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type ProductsHandler struct {
	catalog port.CatalogBrowser
	cart    port.CartKeeper
}

func RegisterProducts(r chi.Router, catalog port.CatalogBrowser, cart port.CartKeeper) {
	h := ProductsHandler{catalog, cart}
	r.Get("/v1/products", h.Browse)
	r.Get("/v1/products/{id}", h.Detail)
}

func (h ProductsHandler) Browse(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Browse"
	log := slog.With("op", op)

	var params BrowseParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_query", "invalid filter parameters")
		log.Warn("failed to decode query", "err", err)
		return
	}

	ps := h.catalog.Browse(params.Category, params.Search)

	view := ProductListView{
		Products:   make([]ProductView, 0, len(ps)),
		Count:      len(ps),
		Categories: categories,
	}
	for _, p := range ps {
		view.Products = append(view.Products, toProductView(p, h.cart.Wishlisted(p.ID)))
	}
	if len(ps) == 0 {
		view.Message = "No products match your filters."
	}

	respondJSON(w, http.StatusOK, view)
}

func (h ProductsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Detail"
	log := slog.With("op", op)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	p, err := h.catalog.Product(id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		log.Error("failed to load product", "err", err)
		return
	}

	view := ProductDetailView{
		ProductView: toProductView(p, h.cart.Wishlisted(p.ID)),
		Description: p.Description,
		Related:     make([]ProductView, 0, relatedLimit),
	}
	for _, rp := range h.catalog.Related(p, relatedLimit) {
		view.Related = append(view.Related, toProductView(rp, h.cart.Wishlisted(rp.ID)))
	}

	respondJSON(w, http.StatusOK, view)
}
