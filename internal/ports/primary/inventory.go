package primary

import "context"

// InventoryService defines the primary port for parts ledger operations.
type InventoryService interface {
	// GetPart retrieves a part by SKU.
	GetPart(ctx context.Context, partID string) (*Part, error)

	// ListParts lists all parts in shelf order.
	ListParts(ctx context.Context) ([]*Part, error)

	// ConsumePart decrements on-hand stock, clamping at zero. Underflow is
	// a policy, not an error.
	ConsumePart(ctx context.Context, partID string, quantity int) (*Part, error)

	// RestockPart increments on-hand stock.
	RestockPart(ctx context.Context, partID string, quantity int) (*Part, error)

	// LowStockItems returns the parts below their minimum threshold.
	LowStockItems(ctx context.Context) ([]*Part, error)
}

// Part is the inventory view handed to collaborators.
type Part struct {
	ID       string
	Name     string
	OnHand   int
	MinStock int
	UnitCost float64
}
