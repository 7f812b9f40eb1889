package service

import (
	"fmt"

	"github.com/shopdiginow/storefront/internal/core/domain"
)

type stubCatalog struct {
	products []domain.Product
}

func (c stubCatalog) Products() []domain.Product {
	return c.products
}

func (c stubCatalog) Product(id int) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("stubCatalog: id %d: %w", id, domain.ErrProductNotFound)
}

func usd(amount int64) domain.Price {
	return domain.Price{Amount: amount, Currency: "USD"}
}

func testCatalog() stubCatalog {
	return stubCatalog{products: []domain.Product{
		{
			ID:       1,
			Name:     "Adobe Creative Cloud – 12 Months",
			Provider: "Adobe",
			Category: "Graphics Tools",
			Features: []string{"Access to 21+ apps", "85 GB cloud storage"},
			Variants: []domain.PriceVariant{{Duration: "12 Months", Price: usd(57)}},
		},
		{
			ID:       3,
			Name:     "Canva Pro – Team Panel",
			Provider: "Canva",
			Category: "Graphics Tools",
			Features: []string{"Premium templates and assets"},
			Variants: []domain.PriceVariant{{Duration: "12 Months", Price: usd(39)}},
		},
		{
			ID:       4,
			Name:     "Coursera Plus – 12 Months",
			Provider: "Coursera",
			Category: "Educational Tools",
			Features: []string{"7000+ courses"},
			Variants: []domain.PriceVariant{{Duration: "12 Months", Price: usd(45)}},
		},
		{
			ID:       9,
			Name:     "Microsoft Office 365 – Lifetime Access",
			Provider: "Microsoft",
			Category: "Productivity Tools",
			Features: []string{"Word, Excel, PowerPoint, Outlook"},
			Variants: []domain.PriceVariant{{Duration: "Lifetime", Price: usd(15)}},
		},
	}}
}
