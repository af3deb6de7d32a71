package repository

import "bakery-management/internal/model"

// ListItemsOptions filters the catalog listing.
// An empty Kind lists regular items followed by special items.
type ListItemsOptions struct {
	Kind model.Kind
}

// UpdateQuantityOptions sets the available quantity of every item whose name
// matches Name case-insensitively, in both partitions.
type UpdateQuantityOptions struct {
	Name     string
	Quantity int
}
