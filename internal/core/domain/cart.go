package domain

// CartItem is a cart row keyed by product id. Name, provider, image,
// price and duration are denormalized snapshots taken when the item
// was added.
type CartItem struct {
	ProductID int
	Name      string
	Provider  string
	Image     string
	Price     Price
	Duration  string
	Quantity  int
}

// LineTotal is the item price multiplied by its quantity.
func (i CartItem) LineTotal() int64 {
	return i.Price.Amount * int64(i.Quantity)
}

// Cart is an ordered list of items, at most one per product id.
type Cart struct {
	Items []CartItem
}

// NewCartItem snapshots a product into a cart row using its default
// price variant.
func NewCartItem(p Product) CartItem {
	v := p.Primary()
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Provider:  p.Provider,
		Image:     p.Image,
		Price:     v.Price,
		Duration:  v.Duration,
		Quantity:  1,
	}
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Units is the summed quantity across all rows.
func (c Cart) Units() int {
	var n int
	for _, i := range c.Items {
		n += i.Quantity
	}
	return n
}

func (c Cart) Subtotal() int64 {
	var sum int64
	for _, i := range c.Items {
		sum += i.LineTotal()
	}
	return sum
}

// Discount is the order-level discount: floor(subtotal * 0.2).
func (c Cart) Discount() int64 {
	return c.Subtotal() / 5
}

func (c Cart) Total() int64 {
	return c.Subtotal() - c.Discount()
}
