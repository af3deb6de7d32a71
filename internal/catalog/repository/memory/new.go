package memory

import (
	"fmt"
	"sync"

	"bakery-management/internal/catalog/repository"
	"bakery-management/internal/model"
	"bakery-management/pkg/log"
)

type implRepository struct {
	mu      sync.RWMutex
	regular []model.Item
	special []model.Item
	l       log.Logger
}

// New creates an in-memory catalog holding copies of the given partitions.
// Item kinds are normalised to the partition they are stored in.
func New(l log.Logger, regular, special []model.Item) repository.Repository {
	if l == nil {
		panic("catalog/repository/memory: logger is required")
	}
	return &implRepository{
		regular: clonePartition(regular, model.KindRegular),
		special: clonePartition(special, model.KindSpecial),
		l:       l,
	}
}

// NewSeeded creates the catalog stocked with the bakery's standard range.
func NewSeeded(l log.Logger) repository.Repository {
	return New(l, SeedRegular(), SeedSpecial())
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/memory.%s", method)
}

func clonePartition(items []model.Item, kind model.Kind) []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		it.Kind = kind
		out[i] = it
	}
	return out
}
