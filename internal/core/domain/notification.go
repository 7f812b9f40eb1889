package domain

// Notification is the user-visible confirmation emitted by cart,
// wishlist and checkout operations.
type Notification struct {
	Title   string
	Message string
}
