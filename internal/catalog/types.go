package catalog

// --- UseCase Inputs ---

type UpdateStockInput struct {
	Name     string
	Quantity int
}

// --- UseCase Outputs ---

// UpdateStockOutput reports how many catalog entries took the new quantity.
// Matched == 0 means the name is not in the catalog; that is not an error.
type UpdateStockOutput struct {
	Name     string
	Quantity int
	Matched  int
}
