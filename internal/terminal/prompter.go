package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bakery-management/internal/action"
)

// ShowDialog prints a boxed message and waits for nothing: the dialog is dismissed once drawn.
func (w *Window) ShowDialog(title, text string) {
	lines := strings.Split(text, "\n")
	width := len(title)
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	bar := "+" + strings.Repeat("-", width+2) + "+"

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, bar)
	fmt.Fprintf(w.out, "| %-*s |\n", width, title)
	fmt.Fprintln(w.out, bar)
	for _, l := range lines {
		fmt.Fprintf(w.out, "| %-*s |\n", width, l)
	}
	fmt.Fprintln(w.out, bar)
}

// CustomerName implements action.Prompter.
func (w *Window) CustomerName(ctx context.Context) (string, bool) {
	return w.ask(PromptCustomerName)
}

// OrderDetails implements action.Prompter.
func (w *Window) OrderDetails(ctx context.Context) (action.OrderDetails, bool) {
	fmt.Fprintf(w.out, "\n-- %s --\n", action.LabelPlaceOrder)

	var d action.OrderDetails
	var ok bool
	if d.Name, ok = w.ask(PromptCustomer); !ok {
		return action.OrderDetails{}, false
	}
	if d.Address, ok = w.ask(PromptAddress); !ok {
		return action.OrderDetails{}, false
	}
	if d.Phone, ok = w.ask(PromptPhone); !ok {
		return action.OrderDetails{}, false
	}
	if !w.confirm() {
		return action.OrderDetails{}, false
	}
	return d, true
}

// StockUpdate implements action.Prompter.
func (w *Window) StockUpdate(ctx context.Context, itemNames []string) (action.StockUpdateInput, bool) {
	fmt.Fprintf(w.out, "\n-- %s --\n", action.LabelUpdateStock)

	idx, ok := w.selectItem(itemNames)
	if !ok {
		return action.StockUpdateInput{}, false
	}
	qty, ok := w.ask(PromptNewQuantity)
	if !ok {
		return action.StockUpdateInput{}, false
	}
	if !w.confirm() {
		return action.StockUpdateInput{}, false
	}
	return action.StockUpdateInput{ItemName: itemNames[idx], Quantity: qty}, true
}

// selectItem lists names and reads a 1-based index or an exact name.
// Invalid choices are asked again; end of input cancels.
func (w *Window) selectItem(names []string) (int, bool) {
	if len(names) == 0 {
		return 0, false
	}
	for i, n := range names {
		fmt.Fprintf(w.out, "  %2d) %s\n", i+1, n)
	}
	for {
		choice, ok := w.ask(PromptSelectItem)
		if !ok {
			return 0, false
		}
		if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(names) {
			return i - 1, true
		}
		for i, n := range names {
			if strings.EqualFold(n, choice) {
				return i, true
			}
		}
		fmt.Fprintf(w.out, "Please choose 1-%d or type an item name.\n", len(names))
	}
}

// confirm reads the OK/Cancel choice. Anything starting with "c" cancels.
func (w *Window) confirm() bool {
	answer, ok := w.ask(PromptConfirm)
	if !ok {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(answer), "c")
}

// ask prints a prompt and reads one line. ok is false at end of input.
func (w *Window) ask(prompt string) (string, bool) {
	fmt.Fprintf(w.out, "%s ", prompt)
	if !w.in.Scan() {
		fmt.Fprintln(w.out)
		return "", false
	}
	return strings.TrimRight(w.in.Text(), "\r"), true
}
