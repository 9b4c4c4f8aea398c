package domain

import (
	"golang.org/x/text/currency"
)

type Product struct {
	ID    int64
	Name  string
	Price Money
}

// CartState is one full snapshot of the container: the catalog, the cart
// lines in insertion order (duplicates allowed) and the last computed total.
// Total is only consistent with Cart right after an explicit recalculation.
type CartState struct {
	Products []Product
	Cart     []Product
	Total    Money
}

// PlaceholderProduct is the line appended when an id absent from the catalog
// is added to the cart. Currency XXX marks it as a non-product entry.
func PlaceholderProduct() Product {
	return Product{
		Price: Money{Currency: currency.XXX},
	}
}

func (p Product) IsPlaceholder() bool {
	return p.ID == 0
}

func (s CartState) Clone() CartState {
	out := CartState{Total: s.Total}
	if s.Products != nil {
		out.Products = make([]Product, len(s.Products))
		copy(out.Products, s.Products)
	}
	if s.Cart != nil {
		out.Cart = make([]Product, len(s.Cart))
		copy(out.Cart, s.Cart)
	}
	return out
}

// FindProduct returns the first catalog product with the given id.
func (s CartState) FindProduct(id int64) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
