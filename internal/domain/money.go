package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount int64, unit currency.Unit) Money {
	return Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: unit,
	}
}
