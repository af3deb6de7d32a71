package action

import (
	"context"

	"github.com/shopspring/decimal"

	"bakery-management/internal/model"
)

// Prompter collects operator input through modal prompts. ok == false means
// the operator cancelled.
type Prompter interface {
	CustomerName(ctx context.Context) (name string, ok bool)
	OrderDetails(ctx context.Context) (details OrderDetails, ok bool)
	StockUpdate(ctx context.Context, itemNames []string) (input StockUpdateInput, ok bool)
}

// View is the part of the window the handlers drive.
type View interface {
	LoadItems(ctx context.Context) error
	PurchasedItems() []model.Item
	ShowBill(customer string, total decimal.Decimal) string
	ShowMessage(text string)
}
