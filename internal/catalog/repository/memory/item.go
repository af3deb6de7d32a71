package memory

import (
	"context"
	"fmt"
	"strings"

	"bakery-management/internal/catalog/repository"
	"bakery-management/internal/model"
)

// ListItems returns a copy of the requested partition(s) in catalog order.
func (r *implRepository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	switch opt.Kind {
	case model.KindRegular:
		return append([]model.Item(nil), r.regular...), nil
	case model.KindSpecial:
		return append([]model.Item(nil), r.special...), nil
	case "":
		items := make([]model.Item, 0, len(r.regular)+len(r.special))
		items = append(items, r.regular...)
		return append(items, r.special...), nil
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownKind, opt.Kind)
	}
}

// UpdateQuantity sets Quantity on every case-insensitive name match in both
// partitions and returns the number of items changed.
func (r *implRepository) UpdateQuantity(ctx context.Context, opt repository.UpdateQuantityOptions) (int, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateQuantity"), err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matched := setQuantity(r.regular, opt.Name, opt.Quantity)
	matched += setQuantity(r.special, opt.Name, opt.Quantity)

	r.l.Debugf(ctx, "%s: name=%q quantity=%d matched=%d", r.dsn("UpdateQuantity"), opt.Name, opt.Quantity, matched)
	return matched, nil
}

func setQuantity(items []model.Item, name string, qty int) int {
	n := 0
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			items[i].Quantity = qty
			n++
		}
	}
	return n
}
