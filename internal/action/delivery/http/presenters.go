package http

import (
	"time"

	"bakery-management/internal/action"
	"bakery-management/internal/view"
	"bakery-management/pkg/pricing"
	"bakery-management/pkg/response"
)

// --- Request DTOs ---

type setPurchaseReq struct {
	Name     string `json:"name"     binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

type generateBillReq struct {
	CustomerName string `json:"customer_name"`
	Cancel       bool   `json:"cancel"`
}

func (r generateBillReq) toPrompter() *requestPrompter {
	return &requestPrompter{cancel: r.Cancel, customer: r.CustomerName}
}

type placeOrderReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Cancel  bool   `json:"cancel"`
}

func (r placeOrderReq) toPrompter() *requestPrompter {
	return &requestPrompter{
		cancel: r.Cancel,
		order:  action.OrderDetails{Name: r.Name, Address: r.Address, Phone: r.Phone},
	}
}

// updateStockReq carries the quantity as free text, exactly as typed into the dialog.
type updateStockReq struct {
	ItemName string `json:"item_name"`
	Quantity string `json:"quantity"`
	Cancel   bool   `json:"cancel"`
}

func (r updateStockReq) toPrompter() *requestPrompter {
	return &requestPrompter{
		cancel: r.Cancel,
		stock:  action.StockUpdateInput{ItemName: r.ItemName, Quantity: r.Quantity},
	}
}

// --- Response DTOs ---

type rowResp struct {
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	AvailableQty int    `json:"available_qty"`
	PurchaseQty  int    `json:"purchase_qty"`
}

type windowResp struct {
	Title           string    `json:"title"`
	Heading         string    `json:"heading"`
	Regular         []rowResp `json:"regular"`
	Special         []rowResp `json:"special"`
	TotalLabel      string    `json:"total_label"`
	PurchaseOptions []int     `json:"purchase_options"`
}

func newRowResps(rows []view.Row) []rowResp {
	out := make([]rowResp, len(rows))
	for i, r := range rows {
		out[i] = rowResp{
			Name:         r.Name,
			UnitPrice:    pricing.FormatAmount(r.UnitPrice),
			AvailableQty: r.Available,
			PurchaseQty:  r.Purchase,
		}
	}
	return out
}

func (h *handler) newWindowResp() windowResp {
	s := h.view.Snapshot()
	return windowResp{
		Title:           s.Title,
		Heading:         s.Heading,
		Regular:         newRowResps(s.Regular),
		Special:         newRowResps(s.Special),
		TotalLabel:      s.TotalLabel,
		PurchaseOptions: h.view.PurchaseOptions(),
	}
}

type actionResp struct {
	Status    string            `json:"status"`
	Title     string            `json:"title,omitempty"`
	Message   string            `json:"message,omitempty"`
	Total     string            `json:"total,omitempty"`
	ReceiptID string            `json:"receipt_id,omitempty"`
	HandledAt response.DateTime `json:"handled_at"`
}

func newActionResp(res action.Result) actionResp {
	resp := actionResp{
		Status:    string(res.Status),
		Title:     res.Title,
		Message:   res.Message,
		ReceiptID: res.ReceiptID,
		HandledAt: response.DateTime(time.Now()),
	}
	if res.ReceiptID != "" && res.Title == view.DialogBill {
		resp.Total = pricing.FormatAmount(res.Total)
	}
	return resp
}
