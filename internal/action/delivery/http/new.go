package http

import (
	"bakery-management/internal/action"
	"bakery-management/internal/view"
	"bakery-management/pkg/log"
)

type handler struct {
	l    log.Logger
	h    *action.Handler
	view *view.View
	exit func()
}

// New creates the automation handler for the window's buttons and grid cells.
// exit is called after the Exit button has been answered.
func New(l log.Logger, h *action.Handler, v *view.View, exit func()) *handler {
	return &handler{
		l:    l,
		h:    h,
		view: v,
		exit: exit,
	}
}
