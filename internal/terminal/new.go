package terminal

import (
	"bufio"
	"io"

	"bakery-management/internal/action"
	"bakery-management/internal/view"
	"bakery-management/pkg/log"
)

// Window is the console rendition of the bakery window. It renders the grids,
// reads menu choices and answers the handlers' modal prompts from the same input.
type Window struct {
	l       log.Logger
	in      *bufio.Scanner
	out     io.Writer
	view    *view.View
	handler *action.Handler
}

// New creates a console window reading from in and drawing to out.
// The window must be attached to a view and handler with Attach before Run.
func New(l log.Logger, in io.Reader, out io.Writer) *Window {
	return &Window{
		l:   l,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Attach wires the window to the view it draws and the handler its buttons trigger.
func (w *Window) Attach(v *view.View, h *action.Handler) {
	w.view = v
	w.handler = h
}

var (
	_ view.Display    = (*Window)(nil)
	_ action.Prompter = (*Window)(nil)
)
