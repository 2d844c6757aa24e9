package models

// Currency is a closed enumeration of the currencies wallets can hold.
// The system runs on a single currency today; the type exists so the
// model can grow without schema changes.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies lists every currency wallets may be created with.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyEUR}

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
