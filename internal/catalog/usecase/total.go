package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"bakery-management/internal/model"
	"bakery-management/pkg/pricing"
)

// CalculateTotal sums policy(price, qty) over items. A nil policy means flat pricing.
func (uc *implUseCase) CalculateTotal(ctx context.Context, items []model.Item, policy pricing.Policy) decimal.Decimal {
	if policy == nil {
		policy = pricing.Flat
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(policy(it.UnitPrice, it.Quantity))
	}

	uc.l.Debugf(ctx, "internal.catalog.usecase.CalculateTotal: %d line(s), total=%s", len(items), pricing.FormatAmount(total))
	return total
}
