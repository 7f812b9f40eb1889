package httphandler

import (
	"github.com/shopdiginow/storefront/internal/core/domain"
)

type (
	VariantView struct {
		Duration    string `json:"duration"`
		Price       string `json:"price"`
		RetailPrice string `json:"retail_price"`
		Savings     string `json:"savings"`
		Lifetime    bool   `json:"lifetime"`
	}

	ProductView struct {
		ID         int           `json:"id"`
		Name       string        `json:"name"`
		Provider   string        `json:"provider"`
		Category   string        `json:"category"`
		Image      string        `json:"image"`
		Features   []string      `json:"features"`
		Variants   []VariantView `json:"variants"`
		Wishlisted bool          `json:"wishlisted"`
	}

	ProductListView struct {
		Products   []ProductView `json:"products"`
		Count      int           `json:"count"`
		Categories []string      `json:"categories"`
		Message    string        `json:"message,omitempty"`
	}

	ProductDetailView struct {
		ProductView
		Description string        `json:"description"`
		Related     []ProductView `json:"related"`
	}

	CartItemView struct {
		ProductID int    `json:"product_id"`
		Name      string `json:"name"`
		Provider  string `json:"provider"`
		Image     string `json:"image"`
		Duration  string `json:"duration"`
		Quantity  int    `json:"quantity"`
		Price     string `json:"price"`
		LineTotal string `json:"line_total"`
	}

	CartView struct {
		Items    []CartItemView `json:"items"`
		Count    int            `json:"count"`
		Units    int            `json:"units"`
		Subtotal string         `json:"subtotal"`
		Discount string         `json:"discount"`
		Total    string         `json:"total"`
		Message  string         `json:"message,omitempty"`
	}

	WishlistView struct {
		ProductIDs []int `json:"product_ids"`
		Count      int   `json:"count"`
	}

	NotificationView struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}

	PaymentMethodView struct {
		ID          string `json:"id"`
		Label       string `json:"label"`
		Description string `json:"description"`
		Recommended bool   `json:"recommended"`
		Available   bool   `json:"available"`
	}

	WhatsAppView struct {
		Number   string `json:"number"`
		ChatLink string `json:"chat_link"`
		SendLink string `json:"send_link"`
		Message  string `json:"message"`
	}

	CheckoutView struct {
		State          string              `json:"state"`
		OrderID        string              `json:"order_id"`
		Summary        CartView            `json:"summary"`
		PaymentMethods []PaymentMethodView `json:"payment_methods,omitempty"`
		WhatsApp       *WhatsAppView       `json:"whatsapp,omitempty"`
		NextSteps      []string            `json:"next_steps,omitempty"`
	}
)

type (
	AddItemRequest struct {
		ProductID int `json:"product_id"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	// BrowseParams is decoded from the catalog query string.
	BrowseParams struct {
		Category string `schema:"category"`
		Search   string `schema:"q"`
	}

	// SubmitParams is the checkout contact form. It is accepted both as
	// an urlencoded form and as JSON.
	SubmitParams struct {
		FirstName     string `schema:"first_name" json:"first_name"`
		LastName      string `schema:"last_name" json:"last_name"`
		Email         string `schema:"email" json:"email"`
		Phone         string `schema:"phone" json:"phone"`
		PaymentMethod string `schema:"payment_method" json:"payment_method"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
		Code  string `json:"code,omitempty"`
	}
)

func toVariantView(v domain.PriceVariant) VariantView {
	return VariantView{
		Duration:    v.Duration,
		Price:       domain.FormatUSD(v.Price.Amount),
		RetailPrice: domain.FormatUSD(v.Price.Retail()),
		Savings:     domain.FormatUSD(v.Price.Savings()),
		Lifetime:    v.Lifetime(),
	}
}

func toProductView(p domain.Product, wishlisted bool) ProductView {
	variants := make([]VariantView, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, toVariantView(v))
	}
	return ProductView{
		ID:         p.ID,
		Name:       p.Name,
		Provider:   p.Provider,
		Category:   p.Category,
		Image:      p.Image,
		Features:   p.Features,
		Variants:   variants,
		Wishlisted: wishlisted,
	}
}

func toCartView(c domain.Cart) CartView {
	items := make([]CartItemView, 0, len(c.Items))
	for _, i := range c.Items {
		items = append(items, CartItemView{
			ProductID: i.ProductID,
			Name:      i.Name,
			Provider:  i.Provider,
			Image:     i.Image,
			Duration:  i.Duration,
			Quantity:  i.Quantity,
			Price:     domain.FormatUSD(i.Price.Amount),
			LineTotal: domain.FormatUSD(i.LineTotal()),
		})
	}

	v := CartView{
		Items:    items,
		Count:    len(c.Items),
		Units:    c.Units(),
		Subtotal: domain.FormatUSD(c.Subtotal()),
		Discount: domain.FormatUSD(c.Discount()),
		Total:    domain.FormatUSD(c.Total()),
	}
	if c.Empty() {
		v.Message = "Your cart is empty. Add some products to get started."
	}
	return v
}

func toOrderCartView(o domain.Order) CartView {
	return toCartView(domain.Cart{Items: o.Items})
}

func toNotificationView(n domain.Notification) *NotificationView {
	return &NotificationView{Title: n.Title, Message: n.Message}
}
