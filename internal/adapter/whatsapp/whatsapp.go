package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopdiginow/storefront/internal/core/domain"
)

// Messenger composes order hand-off messages and wa.me deep links for
// the human-operated payment channel.
type Messenger struct {
	number  string // digits only, e.g. "212604567810"
	display string // operator-facing form, e.g. "+212 604-567810"
	store   string
}

func New(number, display, storeName string) Messenger {
	return Messenger{number: number, display: display, store: storeName}
}

// Number is the display form of the channel's phone number.
func (m Messenger) Number() string {
	return m.display
}

// ChatLink is the plain contact deep link without a prefilled message.
func (m Messenger) ChatLink() string {
	return "https://wa.me/" + m.number
}

// OrderLink is the deep link opening a chat prefilled with the order
// message.
func (m Messenger) OrderLink(o domain.Order) string {
	q := url.Values{"text": {m.OrderMessage(o)}}
	return m.ChatLink() + "?" + q.Encode()
}

// OrderMessage renders the plain-text order summary sent over the
// channel. The field order, labels and currency formatting are the
// integration contract with the operator reading these messages; keep
// them stable.
func (m Messenger) OrderMessage(o domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order from %s*\n\n", m.store)
	fmt.Fprintf(&b, "*Order ID:* %s\n", o.ID)
	fmt.Fprintf(&b, "*Customer:* %s\n", o.Customer.FullName())
	fmt.Fprintf(&b, "*Email:* %s\n", o.Customer.Email)
	fmt.Fprintf(&b, "*Phone:* %s\n\n", o.Customer.Phone)

	b.WriteString("*Items:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %s (%s) - Qty: %d - %s\n",
			item.Name, item.Duration, item.Quantity, domain.FormatUSD(item.LineTotal()))
	}

	fmt.Fprintf(&b, "\n*Subtotal:* %s\n", domain.FormatUSD(o.Subtotal))
	fmt.Fprintf(&b, "*Discount:* -%s\n", domain.FormatUSD(o.Discount))
	fmt.Fprintf(&b, "*Total Amount:* %s\n\n", domain.FormatUSD(o.Total))
	fmt.Fprintf(&b, "*Payment Method:* %s\n\n", o.Payment.Label())
	b.WriteString("Please confirm this order and provide payment instructions.")

	return b.String()
}
