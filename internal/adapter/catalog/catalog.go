package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

//go:embed products.json
var productsJSON []byte

var _ port.CatalogReader = (*Catalog)(nil)

type (
	productRecord struct {
		ID        int              `json:"id"`
		Name      string           `json:"name"`
		Provider  string           `json:"provider"`
		Category  string           `json:"category"`
		Durations []durationRecord `json:"durations"`
		Desc      string           `json:"description"`
		Features  []string         `json:"features"`
		Image     string           `json:"image"`
	}

	durationRecord struct {
		Duration string `json:"duration"`
		Price    string `json:"price"`
	}
)

// Catalog is the static, read-only product list. It is loaded once at
// process start; prices are parsed into structured amounts here and
// never re-parsed.
type Catalog struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// Load decodes and validates the embedded catalog data.
func Load() (*Catalog, error) {
	const op = "catalog.Load"

	var records []productRecord
	if err := json.Unmarshal(productsJSON, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &Catalog{byID: make(map[int]domain.Product, len(records))}
	for _, r := range records {
		p, err := toDomain(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate product id %d", op, p.ID)
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c, nil
}

// Products enumerates the full catalog in data-file order.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

func (c *Catalog) Product(id int) (domain.Product, error) {
	const op = "Catalog.Product"

	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: id %d: %w", op, id, domain.ErrProductNotFound)
	}
	return p, nil
}

func toDomain(r productRecord) (domain.Product, error) {
	if len(r.Durations) == 0 {
		return domain.Product{}, fmt.Errorf("product %d has no price variants", r.ID)
	}

	var variants []domain.PriceVariant
	for _, d := range r.Durations {
		price, err := domain.ParsePrice(d.Price)
		if err != nil {
			return domain.Product{}, fmt.Errorf("product %d: %w", r.ID, err)
		}
		variants = append(variants, domain.PriceVariant{
			Duration: d.Duration,
			Price:    price,
		})
	}

	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Provider:    r.Provider,
		Category:    r.Category,
		Variants:    variants,
		Description: r.Desc,
		Features:    r.Features,
		Image:       r.Image,
	}, nil
}
