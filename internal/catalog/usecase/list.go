package usecase

import (
	"context"

	repo "bakery-management/internal/catalog/repository"
	"bakery-management/internal/model"
)

// RegularItems returns the regular partition in catalog order.
func (uc *implUseCase) RegularItems(ctx context.Context) ([]model.Item, error) {
	return uc.list(ctx, model.KindRegular)
}

// SpecialItems returns the special partition in catalog order.
func (uc *implUseCase) SpecialItems(ctx context.Context) ([]model.Item, error) {
	return uc.list(ctx, model.KindSpecial)
}

// AllItemNames returns every item name, regular items first.
func (uc *implUseCase) AllItemNames(ctx context.Context) ([]string, error) {
	items, err := uc.list(ctx, "")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names, nil
}

func (uc *implUseCase) list(ctx context.Context, kind model.Kind) ([]model.Item, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Kind: kind})
	if err != nil {
		uc.l.Errorf(ctx, "internal.catalog.usecase.list ListItems(%q): %v", kind, err)
		return nil, err
	}
	return items, nil
}
