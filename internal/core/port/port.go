package port

import (
	"context"

	"github.com/shopdiginow/storefront/internal/core/domain"
)

// CatalogReader is the static product catalog: full enumeration and
// lookup by id. Load happens before the application starts serving.
type CatalogReader interface {
	Products() []domain.Product
	Product(id int) (domain.Product, error)
}

// CatalogBrowser is the browse/filter surface consumed by the HTTP layer.
type CatalogBrowser interface {
	Browse(category, search string) []domain.Product
	Product(id int) (domain.Product, error)
	Related(p domain.Product, limit int) []domain.Product
}

// CartKeeper owns the cart and wishlist state. It is the only mutation
// surface; views never hold authoritative state.
type CartKeeper interface {
	Cart() domain.Cart
	AddToCart(productID int) (domain.Notification, error)
	UpdateQuantity(productID, quantity int)
	RemoveItem(productID int) (domain.Notification, bool)
	Wishlist() []int
	Wishlisted(productID int) bool
	ToggleWishlist(productID int) domain.Notification
}

// CheckoutStatus is a snapshot of the checkout flow handed to views.
// Order is nil until the form has been submitted.
type CheckoutStatus struct {
	OrderID string
	State   domain.CheckoutState
	Order   *domain.Order
}

// CheckoutRunner drives the checkout wizard. Begin replaces any prior
// flow instance and mints a fresh order id.
type CheckoutRunner interface {
	Begin() (CheckoutStatus, error)
	Status() (CheckoutStatus, error)
	Submit(info domain.CustomerInfo, method domain.PaymentMethod) (CheckoutStatus, *domain.Notification, error)
	Back() (CheckoutStatus, error)
	ConfirmSent() (CheckoutStatus, domain.Notification, error)
}

// OrderLogger mirrors an order to the external spreadsheet endpoint.
// The call is best-effort: failures are swallowed by the implementation
// and never reach the caller.
type OrderLogger interface {
	LogOrder(ctx context.Context, o domain.Order)
}
