package http

import (
	"bakery-management/internal/catalog"
	"bakery-management/internal/model"
	"bakery-management/pkg/pricing"
)

// --- Request DTOs ---

type listReq struct {
	Kind string `form:"kind" binding:"omitempty,oneof=regular special"`
}

type updateStockReq struct {
	Name     string `json:"name"     binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

func (r updateStockReq) toInput() catalog.UpdateStockInput {
	return catalog.UpdateStockInput{
		Name:     r.Name,
		Quantity: *r.Quantity,
	}
}

// --- Response DTOs ---

type itemResp struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	UnitPrice    string `json:"unit_price"`
	AvailableQty int    `json:"available_qty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		Name:         it.Name,
		Kind:         string(it.Kind),
		UnitPrice:    pricing.FormatAmount(it.UnitPrice),
		AvailableQty: it.Quantity,
	}
}

type listResp struct {
	Regular []itemResp `json:"regular,omitempty"`
	Special []itemResp `json:"special,omitempty"`
}

func newItemResps(items []model.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type updateStockResp struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Matched  int    `json:"matched"`
}

func (h *handler) newUpdateStockResp(out catalog.UpdateStockOutput) updateStockResp {
	return updateStockResp{
		Name:     out.Name,
		Quantity: out.Quantity,
		Matched:  out.Matched,
	}
}
