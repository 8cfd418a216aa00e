// Package primary defines the primary ports (driving interfaces) for the
// application, consumed by the CLI and any future collaborator shell.
package primary

import "context"

// OrderService defines the primary port for work order operations.
type OrderService interface {
	// CreateOrder creates a new work order at the initial status.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*WorkOrder, error)

	// GetOrder retrieves a work order by ID.
	GetOrder(ctx context.Context, orderID string) (*WorkOrder, error)

	// ListOrders lists work orders with optional filters.
	ListOrders(ctx context.Context, filters OrderFilters) ([]*WorkOrder, error)

	// AdvanceStatus moves an order forward one lifecycle rank, saturating at
	// the terminal rank. Landing on complete assigns a synthetic duration if
	// none was recorded.
	AdvanceStatus(ctx context.Context, orderID string) (*WorkOrder, error)

	// SetStatus overwrites the status directly; any valid label is legal.
	SetStatus(ctx context.Context, orderID, status string) (*WorkOrder, error)

	// SetStage overwrites the descriptive stage.
	SetStage(ctx context.Context, orderID, stage string) (*WorkOrder, error)

	// AssignTechnician assigns a technician; an empty ID clears assignment.
	AssignTechnician(ctx context.Context, orderID, technicianID string) (*WorkOrder, error)

	// Annotate replaces the free-text notes.
	Annotate(ctx context.Context, orderID, notes string) (*WorkOrder, error)

	// AttachPhoto increments the photo count.
	AttachPhoto(ctx context.Context, orderID string) (*WorkOrder, error)

	// ToggleClock flips the per-order work clock.
	ToggleClock(ctx context.Context, orderID string) (*WorkOrder, error)

	// RecordPartUsage appends a usage record at the part's current cost and
	// consumes stock, atomically in one published snapshot.
	RecordPartUsage(ctx context.Context, orderID, partID string, quantity int) (*WorkOrder, error)

	// ScanTextForParts resolves free text to known parts and records one
	// usage per distinct part found.
	ScanTextForParts(ctx context.Context, orderID, text string) (*ScanResult, error)
}

// CreateOrderRequest contains parameters for creating a work order.
type CreateOrderRequest struct {
	Title        string
	Customer     string
	UnitID       string
	ETA          string
	Priority     string // Optional, defaults to normal
	TechnicianID string // Optional
}

// OrderFilters contains filter options for listing work orders.
type OrderFilters struct {
	Status       string
	TechnicianID string
}

// ScanResult reports the outcome of a free-text parts scan.
type ScanResult struct {
	MatchedPartIDs []string
	Order          *WorkOrder
}

// WorkOrder is the work order view handed to collaborators.
type WorkOrder struct {
	ID                   string
	Title                string
	Customer             string
	UnitID               string
	Status               string
	Stage                string
	AssignedTechnicianID string
	ETA                  string
	Priority             string
	Notes                string
	PhotoCount           int
	ClockedIn            bool
	PartsUsed            []PartUsage
	CreatedAt            string
	UpdatedAt            string
	DurationMinutes      int
}

// PartUsage is one consumed-part line on a work order.
type PartUsage struct {
	PartID   string
	Quantity int
	UnitCost float64
}
