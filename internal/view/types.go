package view

import "github.com/shopspring/decimal"

// Column headers shared by both grids.
const (
	ColumnItemName     = "Item Name"
	ColumnUnitPrice    = "Unit Price ($)"
	ColumnAvailableQty = "Available Qty"
	ColumnPurchaseQty  = "Purchase Qty"
)

// Grid titles
const (
	TitleRegular = "Regular Items"
	TitleSpecial = "Special Items"
)

// Dialog titles
const (
	DialogBill    = "Bill Generated"
	DialogMessage = "Message"
)

// Display shows a modal message to the operator.
type Display interface {
	ShowDialog(title, text string)
}

// Options configures the window.
type Options struct {
	Title          string
	Heading        string
	MaxPurchaseQty int
}

// Row is one grid line. Only Purchase is editable.
type Row struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Available int             `json:"available_qty"`
	Purchase  int             `json:"purchase_qty"`
}

// Snapshot is a read-only copy of the window state.
type Snapshot struct {
	Title      string `json:"title"`
	Heading    string `json:"heading"`
	Regular    []Row  `json:"regular"`
	Special    []Row  `json:"special"`
	TotalLabel string `json:"total_label"`
}
