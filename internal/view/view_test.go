package view_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-management/internal/catalog"
	"bakery-management/internal/catalog/repository/memory"
	"bakery-management/internal/catalog/usecase"
	"bakery-management/internal/model"
	"bakery-management/internal/view"
	"bakery-management/pkg/log"
)

type dialog struct {
	title string
	text  string
}

type recordingDisplay struct {
	dialogs []dialog
}

func (d *recordingDisplay) ShowDialog(title, text string) {
	d.dialogs = append(d.dialogs, dialog{title: title, text: text})
}

func newView(t *testing.T) (*view.View, catalog.UseCase, *recordingDisplay) {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(memory.NewSeeded(l), l)
	disp := &recordingDisplay{}
	v := view.New(l, uc, disp, view.Options{
		Title:          "Sweet Delights Bakery Management System",
		Heading:        "Sweet Delights Bakery",
		MaxPurchaseQty: 10,
	})
	require.NoError(t, v.LoadItems(context.Background()))
	return v, uc, disp
}

func TestLoadItems_ResetsPurchaseAndIsIdempotent(t *testing.T) {
	v, _, _ := newView(t)
	ctx := context.Background()

	require.NoError(t, v.SetPurchaseQuantity(model.KindRegular, 0, 4))
	require.NoError(t, v.SetPurchaseQuantity(model.KindSpecial, 2, 1))

	require.NoError(t, v.LoadItems(ctx))
	first := v.Snapshot()
	require.NoError(t, v.LoadItems(ctx))
	second := v.Snapshot()

	assert.Equal(t, first, second)
	assert.Len(t, first.Regular, 10)
	assert.Len(t, first.Special, 10)
	for _, r := range append(first.Regular, first.Special...) {
		assert.Zero(t, r.Purchase, "row %q", r.Name)
	}
}

func TestPurchasedItems_OnlyPositiveRows(t *testing.T) {
	v, _, _ := newView(t)

	assert.Empty(t, v.PurchasedItems())

	require.NoError(t, v.SetPurchaseQuantityByName("Bread", 3))
	require.NoError(t, v.SetPurchaseQuantityByName("macarons box", 10))
	require.NoError(t, v.SetPurchaseQuantityByName("Cake", 1))
	require.NoError(t, v.SetPurchaseQuantityByName("Cake", 0))

	items := v.PurchasedItems()
	require.Len(t, items, 2)

	assert.Equal(t, "Bread", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, model.KindRegular, items[0].Kind)

	assert.Equal(t, "Macarons Box", items[1].Name)
	assert.Equal(t, 10, items[1].Quantity)
	assert.Equal(t, model.KindSpecial, items[1].Kind)
}

func TestSetPurchaseQuantity_Bounds(t *testing.T) {
	v, _, _ := newView(t)

	tests := []struct {
		name    string
		kind    model.Kind
		row     int
		qty     int
		wantErr error
	}{
		{name: "lower bound", kind: model.KindRegular, row: 0, qty: 0},
		{name: "upper bound", kind: model.KindSpecial, row: 9, qty: 10},
		{name: "above range", kind: model.KindRegular, row: 0, qty: 11, wantErr: view.ErrInvalidPurchaseQuantity},
		{name: "negative", kind: model.KindRegular, row: 0, qty: -1, wantErr: view.ErrInvalidPurchaseQuantity},
		{name: "row out of range", kind: model.KindRegular, row: 10, qty: 1, wantErr: view.ErrRowNotFound},
		{name: "unknown grid", kind: "seasonal", row: 0, qty: 1, wantErr: catalog.ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.SetPurchaseQuantity(tt.kind, tt.row, tt.qty)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSetPurchaseQuantityByName_Unknown(t *testing.T) {
	v, _, _ := newView(t)
	err := v.SetPurchaseQuantityByName("Pretzel", 1)
	assert.ErrorIs(t, err, view.ErrRowNotFound)
}

func TestPurchaseOptions(t *testing.T) {
	v, _, _ := newView(t)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, v.PurchaseOptions())
}

func TestShowBill(t *testing.T) {
	v, _, disp := newView(t)

	assert.Equal(t, "Grand Total: $0.00", v.TotalLabel())

	text := v.ShowBill("Alice", decimal.RequireFromString("7.5"))

	assert.Equal(t, "Bill for Alice\nTotal Amount: $7.50", text)
	assert.Equal(t, "Grand Total: $7.50", v.TotalLabel())
	require.Len(t, disp.dialogs, 1)
	assert.Equal(t, view.DialogBill, disp.dialogs[0].title)
	assert.Equal(t, text, disp.dialogs[0].text)
}

func TestShowMessage(t *testing.T) {
	v, _, disp := newView(t)

	v.ShowMessage("Invalid quantity!")

	require.Len(t, disp.dialogs, 1)
	assert.Equal(t, view.DialogMessage, disp.dialogs[0].title)
	assert.Equal(t, "Invalid quantity!", disp.dialogs[0].text)
	assert.Equal(t, "Grand Total: $0.00", v.TotalLabel(), "messages must not touch the total")
}

func TestLoadItems_ReflectsStockUpdate(t *testing.T) {
	v, uc, _ := newView(t)
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, catalog.UpdateStockInput{Name: "Donut", Quantity: 12})
	require.NoError(t, err)

	before := v.Snapshot()
	assert.Equal(t, 35, before.Regular[5].Available, "grid keeps old value until reloaded")

	require.NoError(t, v.LoadItems(ctx))
	after := v.Snapshot()
	assert.Equal(t, "Donut", after.Regular[5].Name)
	assert.Equal(t, 12, after.Regular[5].Available)
}

func TestRender(t *testing.T) {
	v, _, _ := newView(t)
	require.NoError(t, v.SetPurchaseQuantityByName("Bread", 3))

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	out := buf.String()

	for _, want := range []string{
		"Sweet Delights Bakery Management System",
		"Sweet Delights Bakery",
		view.TitleRegular,
		view.TitleSpecial,
		view.ColumnItemName,
		view.ColumnUnitPrice,
		view.ColumnAvailableQty,
		view.ColumnPurchaseQty,
		"Premium Chocolate Cake",
		"Grand Total: $0.00",
	} {
		assert.Contains(t, out, want)
	}

	var breadLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Bread") {
			breadLine = line
			break
		}
	}
	assert.Equal(t, []string{"1", "Bread", "2.50", "50", "3"}, strings.Fields(breadLine))
}
