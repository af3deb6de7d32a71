package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateStockReq binds and validates the stock update body.
func (h *handler) processUpdateStockReq(c *gin.Context) (updateStockReq, error) {
	var req updateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
