package persist_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dmoreno/carrito/internal/domain"
	"github.com/dmoreno/carrito/internal/port"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func randomState() domain.CartState {
	state := domain.DefaultState()
	for range gofakeit.Number(1, 5) {
		state.Cart = append(state.Cart, randomProduct())
	}
	state.Total = randomMoney()
	return state
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:    int64(gofakeit.Number(1, 1_000_000)),
		Name:  gofakeit.ProductName(),
		Price: randomMoney(),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func assertStateEqual(t *testing.T, expected, actual domain.CartState) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	opts := cmp.Options{
		currencyComparer,
		decimalComparer,
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}

func assertMetaStamped(t *testing.T, meta port.Meta) {
	t.Helper()

	assert.NotEmpty(t, meta.SnapshotID)
	assert.False(t, meta.UpdatedAt.IsZero())
}
