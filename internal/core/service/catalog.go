package service

import (
	"fmt"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

var _ port.CatalogBrowser = (*CatalogService)(nil)

// CatalogService answers browse, filter and lookup queries over the
// static catalog. It holds no state of its own.
type CatalogService struct {
	catalog port.CatalogReader
}

func NewCatalogService(catalog port.CatalogReader) CatalogService {
	return CatalogService{catalog}
}

// Browse filters the catalog. A non-empty category must match exactly
// (case-sensitive); a non-empty search matches case-insensitively over
// name, provider and features. Both compose with AND. Catalog order is
// preserved and an empty result is valid.
func (s CatalogService) Browse(category, search string) []domain.Product {
	ps := s.catalog.Products()

	filtered := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !p.Matches(search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s CatalogService) Product(id int) (domain.Product, error) {
	const op = "CatalogService.Product"

	p, err := s.catalog.Product(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Related lists up to limit products sharing the category, excluding
// the product itself, in catalog order.
func (s CatalogService) Related(p domain.Product, limit int) []domain.Product {
	var related []domain.Product
	for _, c := range s.catalog.Products() {
		if len(related) == limit {
			break
		}
		if c.Category == p.Category && c.ID != p.ID {
			related = append(related, c)
		}
	}
	return related
}
