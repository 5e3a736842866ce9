// Package services provides the pricing and metrics engine for deal quotes,
// plus the PDF/CSV/Excel generators that consume its output.
package services

import (
	"errors"
	"fmt"
)

// Rates maps a currency code to its exchange rate, expressed as units of the
// base currency per one unit of that code. The base currency itself carries
// a rate of 1.
type Rates map[string]float64

// ErrUnknownCurrency is returned when a currency code is missing from the
// exchange-rate table. A silent pass-through would corrupt downstream totals,
// so conversion always fails loudly instead.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Convert converts amount from one currency to another using the base
// currency as pivot: amount * rates[from] / rates[to]. Converting a currency
// to itself returns the amount unchanged, with no floating drift.
func Convert(amount float64, from, to string, rates Rates) (float64, error) {
	if from == to {
		if _, ok := rates[from]; !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
		}
		return amount, nil
	}

	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}

	return amount * fromRate / toRate, nil
}
