package domain

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrMissingFields = errors.New("all contact fields are required")
	ErrInvalidEmail  = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CustomerInfo is the checkout contact form. It lives only for the
// duration of a checkout flow and is never persisted.
type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (c CustomerInfo) Validate() error {
	if c.FirstName == "" || c.LastName == "" || c.Email == "" || c.Phone == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	return nil
}

func (c CustomerInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

type PaymentMethod string

const (
	PayWhatsApp PaymentMethod = "whatsapp"
	PayCard     PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PayWhatsApp || m == PayCard
}

// Label is the operator-facing payment method name used in the order
// message and the spreadsheet log.
func (m PaymentMethod) Label() string {
	switch m {
	case PayWhatsApp:
		return "WhatsApp Payment"
	case PayCard:
		return "Credit/Debit Card"
	default:
		return string(m)
	}
}

// Order is transient: it is derived from the cart and customer info at
// submit time, rendered into the hand-off message and mirrored to the
// spreadsheet log. It is never stored.
type Order struct {
	ID       string
	Customer CustomerInfo
	Items    []CartItem
	Subtotal int64
	Discount int64
	Total    int64
	Payment  PaymentMethod
	PlacedAt time.Time
}

// NewOrderID derives a short human-presentable id from wall-clock time,
// e.g. "SDN-483920". Not globally unique; collisions under concurrent
// load are accepted.
func NewOrderID(prefix string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return prefix + "-" + ms
}
