package terminal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bakery-management/internal/action"
	"bakery-management/internal/model"
)

type menuEntry struct {
	label string
	run   func(ctx context.Context) error
}

func (w *Window) menu() []menuEntry {
	return []menuEntry{
		{label: LabelSetPurchaseQty, run: w.setPurchaseQty},
		{label: action.LabelGenerateBill, run: w.button(w.handler.GenerateBill)},
		{label: action.LabelPlaceOrder, run: w.button(w.handler.PlaceOrder)},
		{label: action.LabelUpdateStock, run: w.button(w.handler.UpdateStock)},
		{label: action.LabelExit, run: func(context.Context) error { return action.ErrExit }},
	}
}

// Run draws the window and processes menu choices until Exit (action.ErrExit)
// or end of input (nil), which is the console's way of closing the window.
func (w *Window) Run(ctx context.Context) error {
	if w.view == nil || w.handler == nil {
		return errors.New("terminal: window is not attached")
	}

	entries := w.menu()
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprintln(w.out)
		if err := w.view.Render(w.out); err != nil {
			return err
		}
		fmt.Fprintln(w.out)
		for i, e := range entries {
			fmt.Fprintf(w.out, "  [%d] %s\n", i+1, e.label)
		}

		choice, ok := w.ask(PromptChoice)
		if !ok {
			w.l.Info(ctx, "internal.terminal.Run: input closed")
			return nil
		}

		entry, found := pick(entries, choice)
		if !found {
			fmt.Fprintf(w.out, "Unknown action %q.\n", choice)
			continue
		}

		if err := entry.run(ctx); err != nil {
			if errors.Is(err, action.ErrExit) {
				return err
			}
			w.l.Errorf(ctx, "internal.terminal.Run %s: %v", entry.label, err)
			w.ShowDialog("Error", err.Error())
		}
	}
}

func (w *Window) button(fn func(context.Context, action.Prompter) (action.Result, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := fn(ctx, w)
		return err
	}
}

// setPurchaseQty edits one Purchase Qty cell. Only values from the dropdown range are accepted.
func (w *Window) setPurchaseQty(ctx context.Context) error {
	fmt.Fprintf(w.out, "\n-- %s --\n", LabelSetPurchaseQty)

	snap := w.view.Snapshot()
	names := make([]string, 0, len(snap.Regular)+len(snap.Special))
	for _, r := range snap.Regular {
		names = append(names, r.Name)
	}
	for _, r := range snap.Special {
		names = append(names, r.Name)
	}

	idx, ok := w.selectItem(names)
	if !ok {
		return nil
	}

	opts := w.view.PurchaseOptions()
	raw, ok := w.ask(fmt.Sprintf("Purchase Qty (%d-%d):", opts[0], opts[len(opts)-1]))
	if !ok {
		return nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintf(w.out, "Pick a value between %d and %d.\n", opts[0], opts[len(opts)-1])
		return nil
	}

	kind, row := model.KindRegular, idx
	if idx >= len(snap.Regular) {
		kind, row = model.KindSpecial, idx-len(snap.Regular)
	}
	if err := w.view.SetPurchaseQuantity(kind, row, qty); err != nil {
		fmt.Fprintf(w.out, "Pick a value between %d and %d.\n", opts[0], opts[len(opts)-1])
		w.l.Debugf(ctx, "internal.terminal.setPurchaseQty: %v", err)
	}
	return nil
}

// pick matches a menu number or a label (case-insensitive).
func pick(entries []menuEntry, choice string) (menuEntry, bool) {
	choice = strings.TrimSpace(choice)
	if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(entries) {
		return entries[i-1], true
	}
	for _, e := range entries {
		if strings.EqualFold(e.label, choice) {
			return e, true
		}
	}
	return menuEntry{}, false
}
