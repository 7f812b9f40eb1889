package service

import (
	"fmt"
	"slices"
	"sync"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

var _ port.CartKeeper = (*CartService)(nil)

// CartService is the application-state container for the cart and the
// wishlist. All mutation goes through its methods; callers only ever
// see copies.
type CartService struct {
	catalog port.CatalogReader

	mu       sync.Mutex
	items    []domain.CartItem
	wishlist []int
}

func NewCartService(catalog port.CatalogReader) *CartService {
	return &CartService{catalog: catalog}
}

// Cart returns a snapshot of the current cart in insertion order.
func (s *CartService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Items: slices.Clone(s.items)}
}

// AddToCart increments the quantity of an existing row for the product,
// or appends a new row snapshotting the product's default price variant.
func (s *CartService) AddToCart(productID int) (domain.Notification, error) {
	const op = "CartService.AddToCart"

	p, err := s.catalog.Product(productID)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, domain.NewCartItem(p))
	}

	return domain.Notification{
		Title:   "Added to Cart",
		Message: fmt.Sprintf("%s has been added to your cart.", p.Name),
	}, nil
}

// UpdateQuantity sets the quantity of the row for productID. Zero
// removes the row; an absent id is a no-op. No upper bound is enforced.
func (s *CartService) UpdateQuantity(productID, quantity int) {
	if quantity == 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

// RemoveItem deletes the row for productID if present. The returned
// bool reports whether anything was removed.
func (s *CartService) RemoveItem(productID int) (domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return domain.Notification{}, false
	}

	name := s.items[i].Name
	s.items = slices.Delete(s.items, i, i+1)

	return domain.Notification{
		Title:   "Removed from Cart",
		Message: fmt.Sprintf("%s has been removed from your cart.", name),
	}, true
}

// Wishlist returns the wishlisted product ids in insertion order.
func (s *CartService) Wishlist() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.wishlist)
}

func (s *CartService) Wishlisted(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.wishlist, productID)
}

// ToggleWishlist adds the id to the wishlist set, or removes it when
// already present. The notification degrades to a generic product label
// when the id no longer resolves in the catalog.
func (s *CartService) ToggleWishlist(productID int) domain.Notification {
	name := "Product"
	if p, err := s.catalog.Product(productID); err == nil {
		name = p.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.wishlist, productID); i >= 0 {
		s.wishlist = slices.Delete(s.wishlist, i, i+1)
		return domain.Notification{
			Title:   "Removed from Wishlist",
			Message: fmt.Sprintf("%s has been removed from your wishlist.", name),
		}
	}

	s.wishlist = append(s.wishlist, productID)
	return domain.Notification{
		Title:   "Added to Wishlist",
		Message: fmt.Sprintf("%s has been added to your wishlist.", name),
	}
}

// indexOf must be called with the mutex held.
func (s *CartService) indexOf(productID int) int {
	return slices.IndexFunc(s.items, func(i domain.CartItem) bool {
		return i.ProductID == productID
	})
}
