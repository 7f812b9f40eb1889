package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

var _ port.CheckoutRunner = (*CheckoutService)(nil)

// CheckoutService drives the checkout wizard:
//
//	form -> whatsapp-instructions -> completed
//
// with a direct form -> completed short-circuit for payment methods
// that are not live yet. One flow instance is active at a time; Begin
// replaces it and mints a fresh order id.
type CheckoutService struct {
	cart     port.CartKeeper
	orderLog port.OrderLogger
	idPrefix string
	now      func() time.Time

	mu  sync.Mutex
	cur *checkout
}

type checkout struct {
	orderID string
	state   domain.CheckoutState
	order   *domain.Order
}

func NewCheckoutService(cart port.CartKeeper, orderLog port.OrderLogger, idPrefix string) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		orderLog: orderLog,
		idPrefix: idPrefix,
		now:      time.Now,
	}
}

// Begin starts a fresh checkout flow over the current cart.
func (s *CheckoutService) Begin() (port.CheckoutStatus, error) {
	const op = "CheckoutService.Begin"

	if s.cart.Cart().Empty() {
		return port.CheckoutStatus{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = &checkout{
		orderID: domain.NewOrderID(s.idPrefix, s.now()),
		state:   domain.CheckoutForm,
	}
	return s.status(), nil
}

// Status reports the current flow snapshot.
func (s *CheckoutService) Status() (port.CheckoutStatus, error) {
	const op = "CheckoutService.Status"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return port.CheckoutStatus{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	return s.status(), nil
}

// Submit validates the contact form and performs the form transition.
// On success the order is snapshotted from the cart and mirrored to the
// remote log in a detached goroutine; the logging outcome never affects
// the returned state.
func (s *CheckoutService) Submit(info domain.CustomerInfo, method domain.PaymentMethod) (port.CheckoutStatus, *domain.Notification, error) {
	const op = "CheckoutService.Submit"

	if !method.Valid() {
		return port.CheckoutStatus{}, nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidPayment)
	}
	if err := info.Validate(); err != nil {
		return port.CheckoutStatus{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.cart.Cart()
	if cart.Empty() {
		return port.CheckoutStatus{}, nil, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return port.CheckoutStatus{}, nil, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	if s.cur.state != domain.CheckoutForm {
		return port.CheckoutStatus{}, nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidTransition)
	}

	o := domain.Order{
		ID:       s.cur.orderID,
		Customer: info,
		Items:    cart.Items,
		Subtotal: cart.Subtotal(),
		Discount: cart.Discount(),
		Total:    cart.Total(),
		Payment:  method,
		PlacedAt: s.now(),
	}
	s.cur.order = &o

	go s.orderLog.LogOrder(context.Background(), o)

	var notif *domain.Notification
	if method == domain.PayWhatsApp {
		s.cur.state = domain.CheckoutInstructions
	} else {
		s.cur.state = domain.CheckoutCompleted
		notif = &domain.Notification{
			Title:   "Payment Method",
			Message: fmt.Sprintf("%s payment is coming soon.", method.Label()),
		}
	}

	slog.Info("checkout form submitted",
		"orderID", o.ID, "payment", string(method), "state", string(s.cur.state))

	return s.status(), notif, nil
}

// Back returns from the instructions step to the form. No side effects.
func (s *CheckoutService) Back() (port.CheckoutStatus, error) {
	const op = "CheckoutService.Back"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return port.CheckoutStatus{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	if s.cur.state != domain.CheckoutInstructions {
		return port.CheckoutStatus{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidTransition)
	}

	s.cur.state = domain.CheckoutForm
	return s.status(), nil
}

// ConfirmSent records the user's confirmation that the order message
// went out and completes the flow. No further validation happens.
func (s *CheckoutService) ConfirmSent() (port.CheckoutStatus, domain.Notification, error) {
	const op = "CheckoutService.ConfirmSent"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return port.CheckoutStatus{}, domain.Notification{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	if s.cur.state != domain.CheckoutInstructions {
		return port.CheckoutStatus{}, domain.Notification{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidTransition)
	}

	s.cur.state = domain.CheckoutCompleted
	notif := domain.Notification{
		Title:   "Order Submitted!",
		Message: "We'll process your order once payment is confirmed.",
	}
	return s.status(), notif, nil
}

// status must be called with the mutex held.
func (s *CheckoutService) status() port.CheckoutStatus {
	return port.CheckoutStatus{
		OrderID: s.cur.orderID,
		State:   s.cur.state,
		Order:   s.cur.order,
	}
}
