package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

type CartHandler struct {
	cart port.CartKeeper
}

func RegisterCart(r chi.Router, cart port.CartKeeper) {
	h := CartHandler{cart}
	r.Get("/v1/cart", h.GetCart)
	r.Post("/v1/cart/items", h.AddItem)
	r.Put("/v1/cart/items/{id}", h.UpdateQuantity)
	r.Delete("/v1/cart/items/{id}", h.RemoveItem)
	r.Get("/v1/wishlist", h.GetWishlist)
	r.Post("/v1/wishlist/{id}", h.ToggleWishlist)
}

type cartResponse struct {
	Cart         CartView          `json:"cart"`
	Notification *NotificationView `json:"notification,omitempty"`
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, cartResponse{Cart: toCartView(h.cart.Cart())})
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	notif, err := h.cart.AddToCart(req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		log.Error("failed to add item", "err", err)
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse{
		Cart:         toCartView(h.cart.Cart()),
		Notification: toNotificationView(notif),
	})
}

func (h CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateQuantity"
	log := slog.With("op", op)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
		return
	}

	h.cart.UpdateQuantity(id, req.Quantity)

	respondJSON(w, http.StatusOK, cartResponse{Cart: toCartView(h.cart.Cart())})
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	// Removing an absent id is a no-op, not an error.
	var view *NotificationView
	if notif, ok := h.cart.RemoveItem(id); ok {
		view = toNotificationView(notif)
	}

	respondJSON(w, http.StatusOK, cartResponse{
		Cart:         toCartView(h.cart.Cart()),
		Notification: view,
	})
}

func (h CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ids := h.cart.Wishlist()
	respondJSON(w, http.StatusOK, WishlistView{ProductIDs: ids, Count: len(ids)})
}

func (h CartHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	notif := h.cart.ToggleWishlist(id)
	ids := h.cart.Wishlist()

	respondJSON(w, http.StatusOK, struct {
		Wishlist     WishlistView      `json:"wishlist"`
		Notification *NotificationView `json:"notification"`
	}{
		Wishlist:     WishlistView{ProductIDs: ids, Count: len(ids)},
		Notification: toNotificationView(notif),
	})
}
