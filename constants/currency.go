package constants

import "strings"

// AllowedCurrencies is the ISO 4217 allow-list the pattern extractor scans
// for. Order matters: earlier codes win when several appear.
var AllowedCurrencies = []string{
	"EUR", "USD", "GBP", "CHF", "PLN", "SEK", "NOK", "DKK", "CZK", "JPY", "CAD", "AUD",
}

// DefaultCurrency is used when no code is found in the document text.
const DefaultCurrency = "USD"

// CurrencySymbols maps common symbols onto ISO codes.
var CurrencySymbols = map[string]string{
	"€": "EUR",
	"$": "USD",
	"£": "GBP",
}

func IsAllowedCurrency(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range AllowedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
