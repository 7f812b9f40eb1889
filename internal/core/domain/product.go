package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrProductNotFound = errors.New("product not found")

type (
	Product struct {
		ID          int
		Name        string
		Provider    string
		Category    string
		Variants    []PriceVariant
		Description string
		Features    []string
		Image       string
	}

	PriceVariant struct {
		Duration string
		Price    Price
	}

	// Price is a structured amount in major currency units.
	// Catalog data encodes it as "<amount><currency>", e.g. "57USD";
	// it is parsed once at load time.
	Price struct {
		Amount   int64
		Currency string
	}
)

// ParsePrice parses the "57USD" catalog encoding.
// The amount must be a non-negative integer.
func ParsePrice(s string) (Price, error) {
	const op = "domain.ParsePrice"

	s = strings.TrimSpace(s)
	cut := len(s)
	for i, r := range s {
		if !unicode.IsDigit(r) {
			cut = i
			break
		}
	}

	amount, err := strconv.ParseInt(s[:cut], 10, 64)
	if err != nil {
		return Price{}, fmt.Errorf("%s: invalid amount in %q: %w", op, s, err)
	}

	currency := strings.TrimSpace(s[cut:])
	if currency == "" {
		return Price{}, fmt.Errorf("%s: missing currency suffix in %q", op, s)
	}

	return Price{Amount: amount, Currency: currency}, nil
}

// Retail is the displayed pre-discount price: floor(amount * 1.25).
func (p Price) Retail() int64 {
	return p.Amount * 5 / 4
}

// Savings is the displayed delta between retail and the sale price.
func (p Price) Savings() int64 {
	return p.Retail() - p.Amount
}

func (p Price) String() string {
	return fmt.Sprintf("%d%s", p.Amount, p.Currency)
}

// FormatUSD renders a major-unit amount as "$123.00".
func FormatUSD(amount int64) string {
	return fmt.Sprintf("$%.2f", float64(amount))
}

// Primary returns the default price variant used for cart snapshots.
func (p Product) Primary() PriceVariant {
	return p.Variants[0]
}

// Lifetime reports whether the variant is a one-time lifetime license.
func (v PriceVariant) Lifetime() bool {
	return strings.Contains(strings.ToLower(v.Duration), "lifetime")
}

// Matches implements the catalog free-text search: case-insensitive
// substring over name, provider and every feature line.
func (p Product) Matches(search string) bool {
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Provider), search) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
