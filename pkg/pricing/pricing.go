// Package pricing maps a unit price and quantity to a line total.
package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Policy computes the total for qty units at unitPrice.
type Policy func(unitPrice decimal.Decimal, qty int) decimal.Decimal

// Policy names
const (
	NameFlat = "flat"
)

var ErrUnknownPolicy = errors.New("unknown pricing policy")

// Flat charges unitPrice for every unit.
func Flat(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

var registry = map[string]Policy{
	NameFlat: Flat,
}

// ByName looks up a registered policy. Names are case-insensitive.
func ByName(name string) (Policy, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the registered policy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FormatAmount renders d with exactly two decimals, independent of locale.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
