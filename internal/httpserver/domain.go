package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	actionHTTP "bakery-management/internal/action/delivery/http"
	catalogHTTP "bakery-management/internal/catalog/delivery/http"
)

// setupCatalogDomain registers /api/v1/catalog/*. Stock updates run through
// the action handler so they queue behind window actions and refresh the grids.
func (srv *HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := catalogHTTP.New(srv.l, srv.catalogUC, srv.actionHandler)
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h, srv.mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}

// setupActionDomain registers /api/v1/view and /api/v1/actions/*.
// Both drive the same window the console shows.
func (srv *HTTPServer) setupActionDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := actionHTTP.New(srv.l, srv.actionHandler, srv.view, srv.onExit)
	actionHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Window actions registered")
	return nil
}
