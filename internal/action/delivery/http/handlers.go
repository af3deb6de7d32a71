package http

import (
	"github.com/gin-gonic/gin"

	"bakery-management/pkg/response"
)

// Window godoc
// @Summary     Read the window
// @Description Returns both grids, the grand total label and the purchase quantity choices.
// @Tags        Window
// @Produce     json
// @Success     200 {object} windowResp
// @Router      /api/v1/view [GET]
func (h *handler) Window(c *gin.Context) {
	response.OK(c, h.newWindowResp())
}

// SetPurchase godoc
// @Summary     Set a Purchase Qty cell
// @Description Picks a purchase quantity (0-10) for the first row with the given item name.
// @Tags        Window
// @Accept      json
// @Produce     json
// @Param       body body setPurchaseReq true "Item name and purchase quantity"
// @Success     200 {object} windowResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Row not found"
// @Failure     422 {object} response.Resp "Quantity outside the dropdown"
// @Router      /api/v1/view/purchases [PUT]
func (h *handler) SetPurchase(c *gin.Context) {
	ctx := c.Request.Context()

	var req setPurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.view.SetPurchaseQuantityByName(req.Name, *req.Quantity); err != nil {
		h.l.Warnf(ctx, "view.SetPurchaseQuantityByName: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWindowResp())
}

// GenerateBill godoc
// @Summary     Press Generate Bill
// @Description Answers the customer name prompt and bills the current purchase quantities.
// @Tags        Actions
// @Accept      json
// @Produce     json
// @Param       body body generateBillReq true "Prompt answers"
// @Success     200 {object} actionResp
// @Router      /api/v1/actions/generate-bill [POST]
func (h *handler) GenerateBill(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.h.GenerateBill(ctx, req.toPrompter())
	if err != nil {
		h.l.Errorf(ctx, "h.GenerateBill: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newActionResp(res))
}

// PlaceOrder godoc
// @Summary     Press Place Order
// @Description Answers the order dialog. Set cancel to true to press Cancel.
// @Tags        Actions
// @Accept      json
// @Produce     json
// @Param       body body placeOrderReq true "Prompt answers"
// @Success     200 {object} actionResp
// @Router      /api/v1/actions/place-order [POST]
func (h *handler) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.h.PlaceOrder(ctx, req.toPrompter())
	if err != nil {
		h.l.Errorf(ctx, "h.PlaceOrder: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newActionResp(res))
}

// UpdateStock godoc
// @Summary     Press Update Stock
// @Description Answers the stock dialog. The quantity is free text; non-integers are rejected with "Invalid quantity!".
// @Tags        Actions
// @Accept      json
// @Produce     json
// @Param       body body updateStockReq true "Prompt answers"
// @Success     200 {object} actionResp
// @Failure     400 {object} response.Resp "Item not in the selector"
// @Router      /api/v1/actions/update-stock [POST]
func (h *handler) UpdateStock(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p := req.toPrompter()
	res, err := h.h.UpdateStock(ctx, p)
	if err != nil {
		h.l.Errorf(ctx, "h.UpdateStock: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if p.unknownItem {
		response.Error(c, errUnknownItem, nil)
		return
	}

	response.OK(c, newActionResp(res))
}

// Exit godoc
// @Summary     Press Exit
// @Description Terminates the application after answering.
// @Tags        Actions
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/actions/exit [POST]
func (h *handler) Exit(c *gin.Context) {
	h.l.Info(c.Request.Context(), "Exit requested through the automation API")
	response.OK(c, gin.H{"status": "exiting"})
	c.Writer.Flush()

	if h.exit != nil {
		go h.exit()
	}
}
