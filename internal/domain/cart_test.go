package domain_test

import (
	"testing"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := domain.Catalog()
	require.Len(t, catalog, 6)

	seen := map[int64]bool{}
	for _, p := range catalog {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.False(t, p.Price.Amount.IsNegative())
		assert.False(t, p.IsPlaceholder())
	}
}

func TestDefaultState(t *testing.T) {
	state := domain.DefaultState()

	assert.Len(t, state.Products, 6)
	assert.Empty(t, state.Cart)
	assert.True(t, state.Total.Amount.IsZero())
}

func TestCloneIsIndependent(t *testing.T) {
	original := domain.DefaultState()
	original.Cart = append(original.Cart, original.Products[0])

	clone := original.Clone()
	clone.Cart[0] = domain.PlaceholderProduct()
	clone.Products[0].Name = "changed"

	assert.Equal(t, int64(1), original.Cart[0].ID)
	assert.Equal(t, "Laptop", original.Products[0].Name)
}

func TestFindProduct(t *testing.T) {
	state := domain.DefaultState()

	p, ok := state.FindProduct(3)
	require.True(t, ok)
	assert.Equal(t, "Mouse", p.Name)

	_, ok = state.FindProduct(42)
	assert.False(t, ok)
}

func TestPlaceholderProduct(t *testing.T) {
	p := domain.PlaceholderProduct()

	assert.True(t, p.IsPlaceholder())
	assert.Empty(t, p.Name)
	assert.True(t, p.Price.Amount.IsZero())
	assert.Equal(t, "XXX", p.Price.Currency.String())
}
