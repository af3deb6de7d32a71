package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"bakery-management/internal/catalog"
	"bakery-management/internal/model"
	"bakery-management/pkg/log"
	"bakery-management/pkg/pricing"
)

// View is the bakery window: two item grids, the grand total label and modal dialogs.
type View struct {
	mu         sync.Mutex
	l          log.Logger
	uc         catalog.UseCase
	display    Display
	opts       Options
	regular    grid
	special    grid
	totalLabel string
}

// New creates the window. Call LoadItems before showing it.
func New(l log.Logger, uc catalog.UseCase, display Display, opts Options) *View {
	if opts.MaxPurchaseQty <= 0 {
		opts.MaxPurchaseQty = 10
	}
	return &View{
		l:          l,
		uc:         uc,
		display:    display,
		opts:       opts,
		regular:    grid{kind: model.KindRegular},
		special:    grid{kind: model.KindSpecial},
		totalLabel: GrandTotalLabel(decimal.Zero),
	}
}

// LoadItems repopulates both grids from the catalog and resets every purchase quantity to 0.
func (v *View) LoadItems(ctx context.Context) error {
	regular, err := v.uc.RegularItems(ctx)
	if err != nil {
		v.l.Errorf(ctx, "internal.view.LoadItems RegularItems: %v", err)
		return err
	}
	special, err := v.uc.SpecialItems(ctx)
	if err != nil {
		v.l.Errorf(ctx, "internal.view.LoadItems SpecialItems: %v", err)
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.regular.reset(regular)
	v.special.reset(special)
	return nil
}

// PurchaseOptions lists the values the Purchase Qty cell accepts.
func (v *View) PurchaseOptions() []int {
	opts := make([]int, v.opts.MaxPurchaseQty+1)
	for i := range opts {
		opts[i] = i
	}
	return opts
}

// SetPurchaseQuantity edits the Purchase Qty cell of a row.
func (v *View) SetPurchaseQuantity(kind model.Kind, row, qty int) error {
	if err := v.checkQty(qty); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	g, err := v.grid(kind)
	if err != nil {
		return err
	}
	return g.setPurchase(row, qty)
}

// SetPurchaseQuantityByName edits the first row named name, regular grid first.
func (v *View) SetPurchaseQuantityByName(name string, qty int) error {
	if err := v.checkQty(qty); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for _, g := range []*grid{&v.regular, &v.special} {
		if i := g.indexOf(name); i >= 0 {
			return g.setPurchase(i, qty)
		}
	}
	return fmt.Errorf("%w: %q", ErrRowNotFound, name)
}

// PurchasedItems returns one item per row with a positive purchase quantity,
// regular grid first. Quantity carries the purchase quantity.
func (v *View) PurchasedItems() []model.Item {
	v.mu.Lock()
	defer v.mu.Unlock()

	var items []model.Item
	items = v.regular.purchased(items)
	return v.special.purchased(items)
}

// ShowBill updates the grand total label and shows the bill dialog. It returns the dialog text.
func (v *View) ShowBill(customer string, total decimal.Decimal) string {
	text := BillText(customer, total)

	v.mu.Lock()
	v.totalLabel = GrandTotalLabel(total)
	v.mu.Unlock()

	v.display.ShowDialog(DialogBill, text)
	return text
}

// ShowMessage shows an informational dialog.
func (v *View) ShowMessage(text string) {
	v.display.ShowDialog(DialogMessage, text)
}

// TotalLabel returns the grand total label text.
func (v *View) TotalLabel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalLabel
}

// Snapshot copies the current window state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		Title:      v.opts.Title,
		Heading:    v.opts.Heading,
		Regular:    v.regular.snapshot(),
		Special:    v.special.snapshot(),
		TotalLabel: v.totalLabel,
	}
}

func (v *View) checkQty(qty int) error {
	if qty < 0 || qty > v.opts.MaxPurchaseQty {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidPurchaseQuantity, qty, v.opts.MaxPurchaseQty)
	}
	return nil
}

func (v *View) grid(kind model.Kind) (*grid, error) {
	switch kind {
	case model.KindRegular:
		return &v.regular, nil
	case model.KindSpecial:
		return &v.special, nil
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrInvalidKind, kind)
	}
}

// BillText is the bill dialog body.
func BillText(customer string, total decimal.Decimal) string {
	return "Bill for " + customer + "\nTotal Amount: $" + pricing.FormatAmount(total)
}

// GrandTotalLabel is the text of the grand total label.
func GrandTotalLabel(total decimal.Decimal) string {
	return "Grand Total: $" + pricing.FormatAmount(total)
}
