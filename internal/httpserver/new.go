package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bakery-management/internal/action"
	"bakery-management/internal/catalog"
	"bakery-management/internal/middleware"
	"bakery-management/internal/view"
	"bakery-management/pkg/log"
)

// HTTPServer holds all dependencies for the automation API.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Bakery
	catalogUC     catalog.UseCase
	actionHandler *action.Handler
	view          *view.View
	onExit        func()
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	CatalogUseCase catalog.UseCase
	ActionHandler  *action.Handler
	View           *view.View
	OnExit         func()
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		catalogUC:     cfg.CatalogUseCase,
		actionHandler: cfg.ActionHandler,
		view:          cfg.View,
		onExit:        cfg.OnExit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mw = middleware.New(logger, cfg.RateLimitPerMin)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogUC == nil || srv.actionHandler == nil || srv.view == nil {
		return errors.New("catalog use case, action handler and view are required")
	}
	return nil
}
