package model

import "github.com/shopspring/decimal"

// Kind partitions the catalog.
type Kind string

const (
	KindRegular Kind = "regular"
	KindSpecial Kind = "special"
)

// Valid reports whether k is a known catalog partition.
func (k Kind) Valid() bool {
	return k == KindRegular || k == KindSpecial
}

// Item is a bakery product. For catalog items Quantity is the available stock;
// for a purchase selection it is the quantity being bought.
type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Kind      Kind
}
