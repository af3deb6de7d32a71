package action

import "github.com/shopspring/decimal"

// Button labels
const (
	LabelGenerateBill = "Generate Bill"
	LabelPlaceOrder   = "Place Order"
	LabelUpdateStock  = "Update Stock"
	LabelExit         = "Exit"
)

// Messages
const (
	MsgInvalidQuantity = "Invalid quantity!"
)

// OrderDetails is what the Place Order dialog collects.
type OrderDetails struct {
	Name    string
	Address string
	Phone   string
}

// StockUpdateInput is what the Update Stock dialog collects.
// Quantity is the raw text typed by the operator.
type StockUpdateInput struct {
	ItemName string
	Quantity string
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// Result describes how an action ended and what the operator was shown.
type Result struct {
	Status    Status
	Title     string
	Message   string
	Total     decimal.Decimal
	ReceiptID string
}

// OrderPlacedMessage is the Place Order confirmation text.
func OrderPlacedMessage(customer string) string {
	return "Order placed successfully!\nCustomer: " + customer
}

// StockUpdatedMessage is the Update Stock confirmation text.
func StockUpdatedMessage(itemName string) string {
	return "Stock updated successfully for " + itemName + "!"
}
