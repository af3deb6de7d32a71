package repository

import (
	"context"

	"bakery-management/internal/model"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for catalog items.
type ItemRepository interface {
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	UpdateQuantity(ctx context.Context, opt UpdateQuantityOptions) (int, error)
}
