package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"bakery-management/internal/model"
	"bakery-management/pkg/pricing"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reads return snapshots in catalog order.
	RegularItems(ctx context.Context) ([]model.Item, error)
	SpecialItems(ctx context.Context) ([]model.Item, error)
	AllItemNames(ctx context.Context) ([]string, error)

	// Stock
	UpdateStock(ctx context.Context, input UpdateStockInput) (UpdateStockOutput, error)

	// Billing
	CalculateTotal(ctx context.Context, items []model.Item, policy pricing.Policy) decimal.Decimal
}
