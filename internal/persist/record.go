// Package persist provides SnapshotStore adapters: in-memory, JSON file and
// Postgres. All of them serialize CartState through the same record codec,
// with currencies stored as ISO 4217 strings.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type snapshotRecord struct {
	Products      []productRecord `json:"products"`
	Cart          []productRecord `json:"cart"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalCurrency string          `json:"total_currency"`
}

type productRecord struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	PriceAmount   decimal.Decimal `json:"price_amount"`
	PriceCurrency string          `json:"price_currency"`
}

func encodeState(state domain.CartState) ([]byte, error) {
	record := snapshotRecord{
		Products:      mapProductsToRecords(state.Products),
		Cart:          mapProductsToRecords(state.Cart),
		TotalAmount:   state.Total.Amount,
		TotalCurrency: state.Total.Currency.String(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

func decodeState(data []byte) (domain.CartState, error) {
	var record snapshotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.CartState{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	products, err := mapRecordsToProducts(record.Products)
	if err != nil {
		return domain.CartState{}, fmt.Errorf("mapRecordsToProducts: %w", err)
	}

	cart, err := mapRecordsToProducts(record.Cart)
	if err != nil {
		return domain.CartState{}, fmt.Errorf("mapRecordsToProducts: %w", err)
	}

	totalCurrency, err := currency.ParseISO(record.TotalCurrency)
	if err != nil {
		return domain.CartState{}, fmt.Errorf("currency[%s] is not valid: %w", record.TotalCurrency, err)
	}

	return domain.CartState{
		Products: products,
		Cart:     cart,
		Total:    domain.Money{Amount: record.TotalAmount, Currency: totalCurrency},
	}, nil
}

func mapProductToRecord(p domain.Product) productRecord {
	return productRecord{
		ID:            p.ID,
		Name:          p.Name,
		PriceAmount:   p.Price.Amount,
		PriceCurrency: p.Price.Currency.String(),
	}
}

func mapRecordToProduct(record productRecord) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(record.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", record.PriceCurrency, err)
	}

	return domain.Product{
		ID:    record.ID,
		Name:  record.Name,
		Price: domain.Money{Amount: record.PriceAmount, Currency: parsedCurrency},
	}, nil
}

func mapProductsToRecords(products []domain.Product) []productRecord {
	var records []productRecord

	for _, p := range products {
		records = append(records, mapProductToRecord(p))
	}

	return records
}

func mapRecordsToProducts(records []productRecord) ([]domain.Product, error) {
	var products []domain.Product

	for _, record := range records {
		p, err := mapRecordToProduct(record)
		if err != nil {
			return nil, fmt.Errorf("mapRecordToProduct: %w", err)
		}

		products = append(products, p)
	}

	return products, nil
}
