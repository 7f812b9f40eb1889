package domain

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoCheckout        = errors.New("no active checkout")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrInvalidPayment    = errors.New("unknown payment method")
)

// CheckoutState is one of the checkout wizard states. The flow is
// form -> whatsapp-instructions -> completed, with a direct
// form -> completed short-circuit for non-WhatsApp payment methods.
type CheckoutState string

const (
	CheckoutForm         CheckoutState = "form"
	CheckoutInstructions CheckoutState = "whatsapp-instructions"
	CheckoutCompleted    CheckoutState = "completed"
)
