package app

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/query"
)

// QueryServiceImpl implements the QueryService interface. Reads are pure
// over the latest snapshot; the metrics aggregate is memoized per registry
// version since a snapshot never changes once published.
type QueryServiceImpl struct {
	store secondary.RegistryStore
	memo  *gocache.Cache
}

// NewQueryService creates a new QueryService with injected dependencies.
func NewQueryService(store secondary.RegistryStore) *QueryServiceImpl {
	return &QueryServiceImpl{
		store: store,
		memo:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Metrics returns the dashboard aggregate for the latest snapshot.
func (s *QueryServiceImpl) Metrics(ctx context.Context) (*primary.Metrics, error) {
	reg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	key := fmt.Sprintf("metrics:%d", reg.Version)
	if cached, ok := s.memo.Get(key); ok {
		return cached.(*primary.Metrics), nil
	}

	view := metricsToView(query.ComputeMetrics(reg))
	s.memo.Set(key, view, gocache.DefaultExpiration)
	return view, nil
}

// DispatchQueue returns open, unassigned work orders in collection order.
func (s *QueryServiceImpl) DispatchQueue(ctx context.Context) ([]*primary.WorkOrder, error) {
	reg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return ordersToViews(query.DispatchQueue(reg)), nil
}

// FindByIdentifier resolves an order by exact, case-insensitive match on its
// ID or unit tag. A miss returns nil, not an error.
func (s *QueryServiceImpl) FindByIdentifier(ctx context.Context, q string) (*primary.WorkOrder, error) {
	reg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	o, ok := query.FindByIdentifier(reg, q)
	if !ok {
		return nil, nil
	}
	return orderToView(o), nil
}

// ListTechnicians lists the crew with derived availability.
func (s *QueryServiceImpl) ListTechnicians(ctx context.Context) ([]*primary.Technician, error) {
	reg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	techs := make([]*primary.Technician, len(reg.Technicians))
	for i, t := range reg.Technicians {
		techs[i] = techToView(t)
	}
	return techs, nil
}

// Ensure QueryServiceImpl implements the interface
var _ primary.QueryService = (*QueryServiceImpl)(nil)
