package persist

import (
	"testing"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPlaceholderRoundTrip(t *testing.T) {
	state := domain.DefaultState()
	state.Cart = append(state.Cart, domain.PlaceholderProduct())

	blob, err := encodeState(state)
	require.NoError(t, err)

	decoded, err := decodeState(blob)
	require.NoError(t, err)

	require.Len(t, decoded.Cart, 1)
	line := decoded.Cart[0]
	assert.True(t, line.IsPlaceholder())
	assert.True(t, line.Price.Amount.IsZero())
	// XXX is the ISO "no currency" code, so the placeholder survives the codec
	assert.Equal(t, "XXX", line.Price.Currency.String())
}

func TestRecordUnknownCurrency(t *testing.T) {
	blob := []byte(`{"products":[{"id":1,"name":"Laptop","price_amount":"10","price_currency":"ZZZZ"}],"cart":null,"total_amount":"0","total_currency":"USD"}`)

	_, err := decodeState(blob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency[ZZZZ] is not valid")
}

func TestRecordEmptyCart(t *testing.T) {
	blob, err := encodeState(domain.DefaultState())
	require.NoError(t, err)

	decoded, err := decodeState(blob)
	require.NoError(t, err)

	assert.Empty(t, decoded.Cart)
	assert.Len(t, decoded.Products, 6)
	assert.True(t, decoded.Total.Amount.IsZero())
}
