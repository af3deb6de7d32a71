package terminal

// Menu entries. The four button labels are exact.
const (
	LabelSetPurchaseQty = "Set Purchase Qty"
)

// Prompts
const (
	PromptCustomerName = "Enter Customer Name:"
	PromptAddress      = "Address:"
	PromptPhone        = "Phone:"
	PromptCustomer     = "Customer Name:"
	PromptSelectItem   = "Select Item:"
	PromptNewQuantity  = "Enter New Quantity:"
	PromptChoice       = "Choose an action:"
	PromptConfirm      = "[OK] / Cancel:"
)
