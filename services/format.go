package services

import (
	"fmt"
	"strings"
)

// currencySymbols maps supported currency codes to their display symbols.
// Codes without an entry fall back to the code itself as a prefix.
var currencySymbols = map[string]string{
	"AUD": "$",
	"USD": "$",
	"NZD": "$",
	"SGD": "$",
	"GBP": "£",
	"EUR": "€",
}

// FormatMoney formats an amount with the symbol of the given currency code,
// thousands separators and exactly 2 decimal places, e.g. "$1,234,567.89".
func FormatMoney(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := symbol + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
