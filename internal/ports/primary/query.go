package primary

import "context"

// QueryService defines the primary port for read-side aggregations.
// All operations are pure reads over the latest snapshot.
type QueryService interface {
	// Metrics returns the dashboard aggregate.
	Metrics(ctx context.Context) (*Metrics, error)

	// DispatchQueue returns open, unassigned work orders.
	DispatchQueue(ctx context.Context) ([]*WorkOrder, error)

	// FindByIdentifier resolves an order by exact, case-insensitive match on
	// its ID or unit tag. Returns nil when nothing matches.
	FindByIdentifier(ctx context.Context, query string) (*WorkOrder, error)

	// ListTechnicians lists the crew with derived availability.
	ListTechnicians(ctx context.Context) ([]*Technician, error)
}

// Metrics is the dashboard aggregate view.
type Metrics struct {
	Total              int
	CountByStatus      map[string]int
	AvgDurationMinutes float64
	OpenUnassigned     int
	LowStockCount      int
}

// Technician is the crew view handed to collaborators.
type Technician struct {
	ID             string
	Name           string
	Skill          string
	Status         string
	CurrentOrderID string
	Location       string
}
