package usecase

import (
	"context"

	"bakery-management/internal/catalog"
	repo "bakery-management/internal/catalog/repository"
)

// UpdateStock sets the available quantity of every item named input.Name
// (case-insensitive). An unknown name changes nothing and is not an error.
func (uc *implUseCase) UpdateStock(ctx context.Context, input catalog.UpdateStockInput) (catalog.UpdateStockOutput, error) {
	if input.Quantity < 0 {
		return catalog.UpdateStockOutput{}, catalog.ErrNegativeQuantity
	}

	matched, err := uc.repo.UpdateQuantity(ctx, repo.UpdateQuantityOptions{
		Name:     input.Name,
		Quantity: input.Quantity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.catalog.usecase.UpdateStock UpdateQuantity: %v", err)
		return catalog.UpdateStockOutput{}, err
	}

	if matched == 0 {
		uc.l.Warnf(ctx, "internal.catalog.usecase.UpdateStock: no item named %q", input.Name)
	} else {
		uc.l.Infof(ctx, "internal.catalog.usecase.UpdateStock: %q set to %d (%d item(s))", input.Name, input.Quantity, matched)
	}

	return catalog.UpdateStockOutput{
		Name:     input.Name,
		Quantity: input.Quantity,
		Matched:  matched,
	}, nil
}
