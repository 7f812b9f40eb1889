package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shopdiginow/storefront/internal/core/port"
)

// NewRouter assembles the storefront routing surface: catalog browse
// and detail, cart and wishlist mutation, the checkout wizard and a
// JSON catch-all for unknown routes.
func NewRouter(
	catalog port.CatalogBrowser,
	cart port.CartKeeper,
	checkout port.CheckoutRunner,
	messenger Messenger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LogRequests)
	r.Use(AllowJSON)

	RegisterProducts(r, catalog, cart)
	RegisterCart(r, cart)
	RegisterCheckout(r, checkout, cart, messenger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "unknown_route", "page not found")
	})

	return r
}
