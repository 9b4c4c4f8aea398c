package domain

import (
	"golang.org/x/text/currency"
)

// Catalog returns the fixed six-item default catalog. Product ids are unique
// and never change across releases; persisted snapshots reference them.
func Catalog() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: NewMoney(1200, currency.USD)},
		{ID: 2, Name: "Teclado", Price: NewMoney(50, currency.USD)},
		{ID: 3, Name: "Mouse", Price: NewMoney(30, currency.USD)},
		{ID: 4, Name: "Monitor", Price: NewMoney(450, currency.USD)},
		{ID: 5, Name: "Audifonos", Price: NewMoney(80, currency.USD)},
		{ID: 6, Name: "Celular", Price: NewMoney(900, currency.USD)},
	}
}

// DefaultState is the snapshot a fresh session starts from: full catalog,
// empty cart, zero total.
func DefaultState() CartState {
	return CartState{
		Products: Catalog(),
		Total:    NewMoney(0, currency.USD),
	}
}
