package http

import (
	"context"

	"bakery-management/internal/catalog"
	"bakery-management/pkg/log"
)

// StockApplier applies a stock change together with whatever shows the stock.
type StockApplier interface {
	ApplyStock(ctx context.Context, input catalog.UpdateStockInput) (catalog.UpdateStockOutput, error)
}

type handler struct {
	l     log.Logger
	uc    catalog.UseCase
	stock StockApplier
}

// New creates a new HTTP handler for the catalog domain.
// Stock updates go through stock; a nil stock writes to uc directly.
func New(l log.Logger, uc catalog.UseCase, stock StockApplier) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		stock: stock,
	}
}

func (h *handler) applyStock(ctx context.Context, input catalog.UpdateStockInput) (catalog.UpdateStockOutput, error) {
	if h.stock == nil {
		return h.uc.UpdateStock(ctx, input)
	}
	return h.stock.ApplyStock(ctx, input)
}
