package action

import (
	"context"
	"errors"
	"strconv"

	"bakery-management/internal/catalog"
	"bakery-management/internal/view"
	"bakery-management/pkg/pricing"
)

// GenerateBill asks for the customer name and bills the current purchase
// quantities. Stock is not touched.
func (h *Handler) GenerateBill(ctx context.Context, p Prompter) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	name, ok := p.CustomerName(ctx)
	if !ok || name == "" {
		h.l.Debugf(ctx, "internal.action.GenerateBill: cancelled")
		return Result{Status: StatusCancelled}, nil
	}

	items := h.view.PurchasedItems()
	total := h.uc.CalculateTotal(ctx, items, h.policy)
	text := h.view.ShowBill(name, total)

	id := h.newID()
	h.l.Infof(ctx, "internal.action.GenerateBill: bill=%s customer=%q lines=%d total=%s", id, name, len(items), pricing.FormatAmount(total))

	return Result{
		Status:    StatusCompleted,
		Title:     view.DialogBill,
		Message:   text,
		Total:     total,
		ReceiptID: id,
	}, nil
}

// PlaceOrder collects the customer's contact details and confirms the order.
// The order is not linked to the grids or the catalog.
func (h *Handler) PlaceOrder(ctx context.Context, p Prompter) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	details, ok := p.OrderDetails(ctx)
	if !ok {
		h.l.Debugf(ctx, "internal.action.PlaceOrder: cancelled")
		return Result{Status: StatusCancelled}, nil
	}

	msg := OrderPlacedMessage(details.Name)
	h.view.ShowMessage(msg)

	id := h.newID()
	h.l.Infof(ctx, "internal.action.PlaceOrder: order=%s customer=%q address=%q phone=%q", id, details.Name, details.Address, details.Phone)

	return Result{
		Status:    StatusCompleted,
		Title:     view.DialogMessage,
		Message:   msg,
		ReceiptID: id,
	}, nil
}

// UpdateStock asks for an item and a new quantity, applies it and reloads the grids.
func (h *Handler) UpdateStock(ctx context.Context, p Prompter) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	names, err := h.uc.AllItemNames(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.action.UpdateStock AllItemNames: %v", err)
		return Result{}, err
	}

	input, ok := p.StockUpdate(ctx, names)
	if !ok {
		h.l.Debugf(ctx, "internal.action.UpdateStock: cancelled")
		return Result{Status: StatusCancelled}, nil
	}

	qty, err := strconv.Atoi(input.Quantity)
	if err != nil {
		h.l.Warnf(ctx, "internal.action.UpdateStock: bad quantity %q for %q: %v", input.Quantity, input.ItemName, err)
		return h.reject(), nil
	}

	_, err = h.applyStock(ctx, catalog.UpdateStockInput{Name: input.ItemName, Quantity: qty})
	if errors.Is(err, catalog.ErrNegativeQuantity) {
		h.l.Warnf(ctx, "internal.action.UpdateStock: negative quantity %d for %q", qty, input.ItemName)
		return h.reject(), nil
	}
	if err != nil {
		return Result{}, err
	}

	msg := StockUpdatedMessage(input.ItemName)
	h.view.ShowMessage(msg)

	return Result{
		Status:  StatusCompleted,
		Title:   view.DialogMessage,
		Message: msg,
	}, nil
}

// ApplyStock sets an item's available quantity without prompting and reloads
// the grids, so the window never shows stale stock. It waits for any running action.
func (h *Handler) ApplyStock(ctx context.Context, input catalog.UpdateStockInput) (catalog.UpdateStockOutput, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.applyStock(ctx, input)
}

// applyStock must be called with h.mu held.
func (h *Handler) applyStock(ctx context.Context, input catalog.UpdateStockInput) (catalog.UpdateStockOutput, error) {
	out, err := h.uc.UpdateStock(ctx, input)
	if err != nil {
		if !errors.Is(err, catalog.ErrNegativeQuantity) {
			h.l.Errorf(ctx, "internal.action.applyStock uc.UpdateStock: %v", err)
		}
		return catalog.UpdateStockOutput{}, err
	}

	if err := h.view.LoadItems(ctx); err != nil {
		h.l.Errorf(ctx, "internal.action.applyStock LoadItems: %v", err)
		return catalog.UpdateStockOutput{}, err
	}

	if out.Matched == 0 {
		h.l.Warnf(ctx, "internal.action.applyStock: %q matched no catalog item", input.Name)
	}
	return out, nil
}

func (h *Handler) reject() Result {
	h.view.ShowMessage(MsgInvalidQuantity)
	return Result{
		Status:  StatusRejected,
		Title:   view.DialogMessage,
		Message: MsgInvalidQuantity,
	}
}
