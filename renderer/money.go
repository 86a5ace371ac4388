package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats an amount in a currency, like "$1,234.50".
func Money(amount float64, currency string) string {
	if currency == "" || money.GetCurrency(currency) == nil {
		return decimal.NewFromFloat(amount).StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}
