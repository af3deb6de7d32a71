package http

import (
	"github.com/gin-gonic/gin"

	"bakery-management/internal/model"
	"bakery-management/pkg/response"
)

// List godoc
// @Summary     List catalog items
// @Description Returns regular and special items with their available stock.
// @Tags        Catalog
// @Produce     json
// @Param       kind query string false "regular or special (default: both)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/catalog/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var resp listResp
	if req.Kind == "" || req.Kind == string(model.KindRegular) {
		items, err := h.uc.RegularItems(ctx)
		if err != nil {
			h.l.Errorf(ctx, "uc.RegularItems: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
		resp.Regular = newItemResps(items)
	}
	if req.Kind == "" || req.Kind == string(model.KindSpecial) {
		items, err := h.uc.SpecialItems(ctx)
		if err != nil {
			h.l.Errorf(ctx, "uc.SpecialItems: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
		resp.Special = newItemResps(items)
	}

	response.OK(c, resp)
}

// UpdateStock godoc
// @Summary     Set available stock
// @Description Sets the available quantity of every item with the given name (case-insensitive). Unknown names change nothing and report matched=0. The window grids are reloaded, which clears purchase quantities.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body updateStockReq true "Item name and new quantity"
// @Success     200 {object} updateStockResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Negative quantity"
// @Router      /api/v1/catalog/stock [PUT]
func (h *handler) UpdateStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStockReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.applyStock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "h.applyStock: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateStockResp(out))
}
