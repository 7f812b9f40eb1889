package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

// Messenger renders the order hand-off payloads shown on the
// instructions step.
type Messenger interface {
	Number() string
	ChatLink() string
	OrderLink(o domain.Order) string
	OrderMessage(o domain.Order) string
}

type CheckoutHandler struct {
	checkout  port.CheckoutRunner
	cart      port.CartKeeper
	messenger Messenger
}

func RegisterCheckout(r chi.Router, checkout port.CheckoutRunner, cart port.CartKeeper, messenger Messenger) {
	h := CheckoutHandler{checkout, cart, messenger}
	r.Post("/v1/checkout", h.Begin)
	r.Get("/v1/checkout", h.Status)
	r.Post("/v1/checkout/submit", h.Submit)
	r.Post("/v1/checkout/back", h.Back)
	r.Post("/v1/checkout/confirm", h.ConfirmSent)
}

type checkoutResponse struct {
	Checkout     CheckoutView      `json:"checkout"`
	Notification *NotificationView `json:"notification,omitempty"`
}

func (h CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Begin"
	log := slog.With("op", op)

	st, err := h.checkout.Begin()
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			respondError(w, http.StatusConflict, "empty_cart",
				"Your cart is empty. Add some products to proceed with checkout.")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		log.Error("failed to begin checkout", "err", err)
		return
	}

	log.Info("checkout started", "orderID", st.OrderID)
	respondJSON(w, http.StatusCreated, checkoutResponse{Checkout: h.view(st)})
}

func (h CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkout.Status()
	if err != nil {
		respondError(w, http.StatusNotFound, "no_checkout", "no active checkout")
		return
	}
	respondJSON(w, http.StatusOK, checkoutResponse{Checkout: h.view(st)})
}

func (h CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Submit"
	log := slog.With("op", op)

	params, err := decodeSubmit(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		log.Warn("failed to decode submit params", "err", err)
		return
	}

	method := domain.PaymentMethod(params.PaymentMethod)
	if method == "" {
		method = domain.PayWhatsApp
	}

	info := domain.CustomerInfo{
		FirstName: strings.TrimSpace(params.FirstName),
		LastName:  strings.TrimSpace(params.LastName),
		Email:     strings.TrimSpace(params.Email),
		Phone:     strings.TrimSpace(params.Phone),
	}

	st, notif, err := h.checkout.Submit(info, method)
	if err != nil {
		h.submitError(w, log, err)
		return
	}

	resp := checkoutResponse{Checkout: h.view(st)}
	if notif != nil {
		resp.Notification = toNotificationView(*notif)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h CheckoutHandler) submitError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		respondError(w, http.StatusUnprocessableEntity, "missing_fields",
			"Please fill in all required fields")
	case errors.Is(err, domain.ErrInvalidEmail):
		respondError(w, http.StatusUnprocessableEntity, "invalid_email",
			"Please enter a valid email address")
	case errors.Is(err, domain.ErrInvalidPayment):
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "unknown payment method")
	case errors.Is(err, domain.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "your cart is empty")
	case errors.Is(err, domain.ErrNoCheckout):
		respondError(w, http.StatusNotFound, "no_checkout", "no active checkout")
	case errors.Is(err, domain.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "invalid_state", "checkout form already submitted")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		log.Error("failed to submit checkout", "err", err)
	}
}

func (h CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkout.Back()
	if err != nil {
		h.transitionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkoutResponse{Checkout: h.view(st)})
}

func (h CheckoutHandler) ConfirmSent(w http.ResponseWriter, r *http.Request) {
	st, notif, err := h.checkout.ConfirmSent()
	if err != nil {
		h.transitionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkoutResponse{
		Checkout:     h.view(st),
		Notification: toNotificationView(notif),
	})
}

func (h CheckoutHandler) transitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoCheckout):
		respondError(w, http.StatusNotFound, "no_checkout", "no active checkout")
	case errors.Is(err, domain.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "invalid_state", "transition not allowed from current state")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func decodeSubmit(r *http.Request) (SubmitParams, error) {
	var params SubmitParams

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return SubmitParams{}, err
		}
		if err := queryDecoder.Decode(&params, r.PostForm); err != nil {
			return SubmitParams{}, err
		}
		return params, nil
	}

	err := json.NewDecoder(r.Body).Decode(&params)
	return params, err
}

func (h CheckoutHandler) view(st port.CheckoutStatus) CheckoutView {
	view := CheckoutView{
		State:   string(st.State),
		OrderID: st.OrderID,
	}

	if st.Order != nil {
		view.Summary = toOrderCartView(*st.Order)
	} else {
		view.Summary = toCartView(h.cart.Cart())
	}

	switch st.State {
	case domain.CheckoutForm:
		view.PaymentMethods = []PaymentMethodView{
			{
				ID:          string(domain.PayWhatsApp),
				Label:       "Pay via WhatsApp",
				Description: "Quick and secure payment through WhatsApp",
				Recommended: true,
				Available:   true,
			},
			{
				ID:          string(domain.PayCard),
				Label:       "Credit/Debit Card",
				Description: "Pay with your card (Coming Soon)",
			},
		}
	case domain.CheckoutInstructions:
		view.WhatsApp = &WhatsAppView{
			Number:   h.messenger.Number(),
			ChatLink: h.messenger.ChatLink(),
			SendLink: h.messenger.OrderLink(*st.Order),
			Message:  h.messenger.OrderMessage(*st.Order),
		}
	case domain.CheckoutCompleted:
		view.NextSteps = []string{
			"Our team will confirm your order within 5-15 minutes",
			"You'll receive payment instructions via WhatsApp",
			"After payment, digital products will be delivered instantly",
			"Order confirmation will be sent to your email",
		}
		view.WhatsApp = &WhatsAppView{
			Number:   h.messenger.Number(),
			ChatLink: h.messenger.ChatLink(),
		}
	}

	return view
}
