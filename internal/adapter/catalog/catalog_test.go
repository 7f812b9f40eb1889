package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdiginow/storefront/internal/core/domain"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	products := c.Products()
	require.Len(t, products, 13)

	t.Run("UniqueIDs", func(t *testing.T) {
		seen := make(map[int]bool)
		for _, p := range products {
			assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("EveryProductHasVariants", func(t *testing.T) {
		for _, p := range products {
			require.NotEmpty(t, p.Variants, "product %d", p.ID)
			for _, v := range p.Variants {
				assert.GreaterOrEqual(t, v.Price.Amount, int64(0))
				assert.NotEmpty(t, v.Price.Currency)
				assert.NotEmpty(t, v.Duration)
			}
		}
	})

	t.Run("PricesParsedAtLoad", func(t *testing.T) {
		p, err := c.Product(1)
		require.NoError(t, err)
		assert.Equal(t, "Adobe Creative Cloud – 12 Months", p.Name)
		assert.Equal(t, domain.Price{Amount: 57, Currency: "USD"}, p.Primary().Price)
		assert.Equal(t, "12 Months", p.Primary().Duration)
	})

	t.Run("LookupUnknownID", func(t *testing.T) {
		_, err := c.Product(404)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("DataFileOrderPreserved", func(t *testing.T) {
		for i, p := range products {
			assert.Equal(t, i+1, p.ID)
		}
	})
}
