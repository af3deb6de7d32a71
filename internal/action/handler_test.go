package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bakery-management/internal/action"
	"bakery-management/internal/catalog"
	"bakery-management/internal/catalog/repository"
	"bakery-management/internal/catalog/repository/memory"
	"bakery-management/internal/catalog/usecase"
	"bakery-management/internal/model"
	"bakery-management/internal/view"
	"bakery-management/pkg/log"
	"bakery-management/pkg/pricing"
)

// fakePrompter answers every prompt from its fields.
type fakePrompter struct {
	customer     string
	customerOK   bool
	order        action.OrderDetails
	orderOK      bool
	stock        action.StockUpdateInput
	stockOK      bool
	offeredNames []string
}

func (f *fakePrompter) CustomerName(ctx context.Context) (string, bool) {
	return f.customer, f.customerOK
}

func (f *fakePrompter) OrderDetails(ctx context.Context) (action.OrderDetails, bool) {
	return f.order, f.orderOK
}

func (f *fakePrompter) StockUpdate(ctx context.Context, names []string) (action.StockUpdateInput, bool) {
	f.offeredNames = names
	return f.stock, f.stockOK
}

type recordingDisplay struct {
	texts []string
}

func (d *recordingDisplay) ShowDialog(title, text string) {
	d.texts = append(d.texts, text)
}

type fixture struct {
	uc      catalog.UseCase
	view    *view.View
	display *recordingDisplay
	h       *action.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(memory.NewSeeded(l), l)
	disp := &recordingDisplay{}
	v := view.New(l, uc, disp, view.Options{MaxPurchaseQty: 10})
	if err := v.LoadItems(context.Background()); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	return fixture{uc: uc, view: v, display: disp, h: action.New(l, uc, v, pricing.Flat)}
}

func qtyOf(t *testing.T, items []model.Item, name string) int {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it.Quantity
		}
	}
	t.Fatalf("item %q not found", name)
	return 0
}

func TestGenerateBill_BreadForAlice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.view.SetPurchaseQuantityByName("Bread", 3); err != nil {
		t.Fatalf("set purchase: %v", err)
	}

	res, err := f.h.GenerateBill(ctx, &fakePrompter{customer: "Alice", customerOK: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != action.StatusCompleted {
		t.Fatalf("status = %s, want completed", res.Status)
	}
	if res.Message != "Bill for Alice\nTotal Amount: $7.50" {
		t.Errorf("unexpected bill text %q", res.Message)
	}
	if f.view.TotalLabel() != "Grand Total: $7.50" {
		t.Errorf("unexpected total label %q", f.view.TotalLabel())
	}
	if !res.Total.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("total = %s", res.Total)
	}
	if res.ReceiptID == "" {
		t.Errorf("expected a receipt id")
	}

	regular, _ := f.uc.RegularItems(ctx)
	if got := qtyOf(t, regular, "Bread"); got != 50 {
		t.Errorf("billing must not deduct stock, Bread = %d", got)
	}
}

func TestGenerateBill_Cancelled(t *testing.T) {
	tests := []struct {
		name     string
		prompter *fakePrompter
	}{
		{name: "dialog cancelled", prompter: &fakePrompter{customerOK: false}},
		{name: "empty name", prompter: &fakePrompter{customer: "", customerOK: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_ = f.view.SetPurchaseQuantityByName("Cake", 2)

			res, err := f.h.GenerateBill(context.Background(), tt.prompter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != action.StatusCancelled {
				t.Errorf("status = %s, want cancelled", res.Status)
			}
			if len(f.display.texts) != 0 {
				t.Errorf("no dialog expected, got %v", f.display.texts)
			}
			if f.view.TotalLabel() != "Grand Total: $0.00" {
				t.Errorf("total label changed: %q", f.view.TotalLabel())
			}
		})
	}
}

func TestGenerateBill_NothingSelected(t *testing.T) {
	f := newFixture(t)

	res, err := f.h.GenerateBill(context.Background(), &fakePrompter{customer: "Bob", customerOK: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Bill for Bob\nTotal Amount: $0.00" {
		t.Errorf("unexpected text %q", res.Message)
	}
}

func TestPlaceOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.h.PlaceOrder(ctx, &fakePrompter{
		order:   action.OrderDetails{Name: "Carol", Address: "1 Baker St", Phone: "555-0100"},
		orderOK: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Order placed successfully!\nCustomer: Carol" {
		t.Errorf("unexpected text %q", res.Message)
	}
	if len(f.display.texts) != 1 || f.display.texts[0] != res.Message {
		t.Errorf("expected one dialog with the confirmation, got %v", f.display.texts)
	}

	res, err = f.h.PlaceOrder(ctx, &fakePrompter{orderOK: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != action.StatusCancelled || len(f.display.texts) != 1 {
		t.Errorf("cancel should show nothing, status=%s dialogs=%d", res.Status, len(f.display.texts))
	}
}

func TestPlaceOrder_EmptyNameStillConfirms(t *testing.T) {
	f := newFixture(t)

	res, err := f.h.PlaceOrder(context.Background(), &fakePrompter{orderOK: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != action.StatusCompleted || res.Message != "Order placed successfully!\nCustomer: " {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestUpdateStock_InvalidQuantity(t *testing.T) {
	for _, raw := range []string{"not_a_number", "", "1.5", "-3"} {
		t.Run(raw, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			res, err := f.h.UpdateStock(ctx, &fakePrompter{
				stock:   action.StockUpdateInput{ItemName: "Cake", Quantity: raw},
				stockOK: true,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != action.StatusRejected || res.Message != "Invalid quantity!" {
				t.Errorf("unexpected result %+v", res)
			}

			regular, _ := f.uc.RegularItems(ctx)
			if got := qtyOf(t, regular, "Cake"); got != 20 {
				t.Errorf("Cake quantity changed to %d", got)
			}
		})
	}
}

func TestUpdateStock_DonutTo12(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_ = f.view.SetPurchaseQuantityByName("Bread", 4)

	p := &fakePrompter{
		stock:   action.StockUpdateInput{ItemName: "Donut", Quantity: "12"},
		stockOK: true,
	}
	res, err := f.h.UpdateStock(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Stock updated successfully for Donut!" {
		t.Errorf("unexpected text %q", res.Message)
	}

	regular, _ := f.uc.RegularItems(ctx)
	if got := qtyOf(t, regular, "Donut"); got != 12 {
		t.Errorf("Donut = %d, want 12", got)
	}

	snap := f.view.Snapshot()
	for _, r := range snap.Regular {
		if r.Name == "Donut" && r.Available != 12 {
			t.Errorf("grid shows %d for Donut", r.Available)
		}
		if r.Purchase != 0 {
			t.Errorf("purchase qty for %q not reset: %d", r.Name, r.Purchase)
		}
	}

	if len(p.offeredNames) != 20 || p.offeredNames[0] != "Bread" || p.offeredNames[10] != "Red Velvet Cake" {
		t.Errorf("selector should list regular then special names, got %v", p.offeredNames)
	}
}

func TestUpdateStock_Cancelled(t *testing.T) {
	f := newFixture(t)

	res, err := f.h.UpdateStock(context.Background(), &fakePrompter{stockOK: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != action.StatusCancelled || len(f.display.texts) != 0 {
		t.Errorf("unexpected result %+v, dialogs %v", res, f.display.texts)
	}
}

type failingRepo struct{}

func (failingRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	return nil, repository.ErrFailedToList
}

func (failingRepo) UpdateQuantity(ctx context.Context, opt repository.UpdateQuantityOptions) (int, error) {
	return 0, repository.ErrFailedToUpdate
}

func TestUpdateStock_CatalogFailure(t *testing.T) {
	l := log.NewNop()
	uc := usecase.New(failingRepo{}, l)
	v := view.New(l, uc, &recordingDisplay{}, view.Options{})
	h := action.New(l, uc, v, nil)

	_, err := h.UpdateStock(context.Background(), &fakePrompter{stockOK: true})
	if !errors.Is(err, repository.ErrFailedToList) {
		t.Fatalf("expected ErrFailedToList, got %v", err)
	}
}

func TestApplyStock(t *testing.T) {
	tests := []struct {
		name        string
		input       catalog.UpdateStockInput
		wantMatched int
		wantErr     error
		wantDonut   int
	}{
		{name: "reloads grid", input: catalog.UpdateStockInput{Name: "donut", Quantity: 12}, wantMatched: 1, wantDonut: 12},
		{name: "unknown name", input: catalog.UpdateStockInput{Name: "Pretzel", Quantity: 3}, wantMatched: 0, wantDonut: 35},
		{name: "negative", input: catalog.UpdateStockInput{Name: "Donut", Quantity: -1}, wantErr: catalog.ErrNegativeQuantity, wantDonut: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_ = f.view.SetPurchaseQuantityByName("Bread", 2)

			out, err := f.h.ApplyStock(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if out.Matched != tt.wantMatched {
				t.Errorf("Matched = %d, want %d", out.Matched, tt.wantMatched)
			}

			for _, r := range f.view.Snapshot().Regular {
				if r.Name == "Donut" && r.Available != tt.wantDonut {
					t.Errorf("grid shows %d for Donut, want %d", r.Available, tt.wantDonut)
				}
			}
			if len(f.display.texts) != 0 {
				t.Errorf("ApplyStock should not open dialogs, got %v", f.display.texts)
			}
		})
	}
}
