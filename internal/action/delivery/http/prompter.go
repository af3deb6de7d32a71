package http

import (
	"context"
	"strings"

	"bakery-management/internal/action"
)

// requestPrompter answers the modal prompts with values from the request body.
type requestPrompter struct {
	cancel   bool
	customer string
	order    action.OrderDetails
	stock    action.StockUpdateInput

	// unknownItem is set when the requested item is not offered by the selector.
	unknownItem bool
}

func (p *requestPrompter) CustomerName(ctx context.Context) (string, bool) {
	if p.cancel {
		return "", false
	}
	return p.customer, true
}

func (p *requestPrompter) OrderDetails(ctx context.Context) (action.OrderDetails, bool) {
	if p.cancel {
		return action.OrderDetails{}, false
	}
	return p.order, true
}

func (p *requestPrompter) StockUpdate(ctx context.Context, names []string) (action.StockUpdateInput, bool) {
	if p.cancel {
		return action.StockUpdateInput{}, false
	}
	for _, n := range names {
		if strings.EqualFold(n, p.stock.ItemName) {
			return action.StockUpdateInput{ItemName: n, Quantity: p.stock.Quantity}, true
		}
	}
	p.unknownItem = true
	return action.StockUpdateInput{}, false
}
