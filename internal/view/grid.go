package view

import (
	"fmt"
	"strings"

	"bakery-management/internal/model"
)

type grid struct {
	kind model.Kind
	rows []Row
}

func (g *grid) reset(items []model.Item) {
	g.rows = g.rows[:0]
	for _, it := range items {
		g.rows = append(g.rows, Row{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Available: it.Quantity,
		})
	}
}

func (g *grid) setPurchase(row, qty int) error {
	if row < 0 || row >= len(g.rows) {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, g.kind, row)
	}
	g.rows[row].Purchase = qty
	return nil
}

func (g *grid) indexOf(name string) int {
	for i, r := range g.rows {
		if strings.EqualFold(r.Name, name) {
			return i
		}
	}
	return -1
}

// purchased appends one item per row with a positive purchase quantity.
func (g *grid) purchased(dst []model.Item) []model.Item {
	for _, r := range g.rows {
		if r.Purchase > 0 {
			dst = append(dst, model.Item{
				Name:      r.Name,
				UnitPrice: r.UnitPrice,
				Quantity:  r.Purchase,
				Kind:      g.kind,
			})
		}
	}
	return dst
}

func (g *grid) snapshot() []Row {
	return append([]Row(nil), g.rows...)
}
