package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/example/dispatchiq/internal/apperr"
	"github.com/example/dispatchiq/internal/core/inventory"
	"github.com/example/dispatchiq/internal/core/order"
	"github.com/example/dispatchiq/internal/core/scan"
	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/registry"
)

// OrderServiceImpl implements the OrderService interface.
type OrderServiceImpl struct {
	pub       publisher
	logger    *zap.Logger
	now       func() time.Time
	estimate  order.DurationEstimator
	randomIDs bool
}

// OrderServiceOption customizes an OrderService.
type OrderServiceOption func(*OrderServiceImpl)

// WithClock injects the time source (tests pass a fixed clock).
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *OrderServiceImpl) { s.now = now }
}

// WithDurationEstimator injects the synthetic-duration policy applied when
// an order completes without a recorded duration.
func WithDurationEstimator(e order.DurationEstimator) OrderServiceOption {
	return func(s *OrderServiceImpl) { s.estimate = e }
}

// WithRandomOrderIDs switches ID generation from the sequential counter to
// random tokens.
func WithRandomOrderIDs() OrderServiceOption {
	return func(s *OrderServiceImpl) { s.randomIDs = true }
}

// NewOrderService creates a new OrderService with injected dependencies.
// The archive may be nil when no history is kept.
func NewOrderService(store secondary.RegistryStore, archive secondary.SnapshotArchive, logger *zap.Logger, opts ...OrderServiceOption) *OrderServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &OrderServiceImpl{
		pub:      publisher{store: store, archive: archive, logger: logger},
		logger:   logger,
		now:      time.Now,
		estimate: order.EstimateByPriority,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder creates a new work order at the initial status.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req primary.CreateOrderRequest) (*primary.WorkOrder, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}

	_, techExists := reg.Technician(req.TechnicianID)
	guard := order.CanCreateOrder(order.CreateOrderContext{
		Customer:         req.Customer,
		Priority:         order.Priority(req.Priority),
		TechnicianID:     req.TechnicianID,
		TechnicianExists: techExists,
	})
	if !guard.Allowed {
		return nil, &apperr.ValidationError{Field: guard.Field, Reason: guard.Reason}
	}

	priority := order.Priority(req.Priority)
	if priority == "" {
		priority = order.PriorityNormal
	}

	next := reg.Clone()
	next.Version = reg.Version + 1

	now := s.now()
	o := &registry.WorkOrder{
		ID:                   s.nextOrderID(next),
		Title:                req.Title,
		Customer:             req.Customer,
		UnitID:               req.UnitID,
		Status:               order.InitialStatus(),
		Stage:                order.InitialStage(),
		AssignedTechnicianID: req.TechnicianID,
		ETA:                  req.ETA,
		Priority:             priority,
		PartsUsed:            []registry.PartUsage{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	next.WorkOrders = append(next.WorkOrders, o)

	if req.TechnicianID != "" {
		next.SyncTechnician(req.TechnicianID)
	}

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("work order created",
		zap.String("order_id", o.ID),
		zap.String("customer", o.Customer),
		zap.String("priority", string(o.Priority)))

	return orderToView(o), nil
}

func (s *OrderServiceImpl) nextOrderID(reg *registry.Registry) string {
	if s.randomIDs {
		for {
			id := order.RandomOrderID()
			if _, taken := reg.Order(id); !taken {
				return id
			}
		}
	}
	return order.GenerateOrderID(reg.MaxOrderNumber(order.ParseOrderNumber))
}

// GetOrder retrieves a work order by ID.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, orderID string) (*primary.WorkOrder, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := reg.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}
	return orderToView(o), nil
}

// ListOrders lists work orders with optional filters.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, filters primary.OrderFilters) ([]*primary.WorkOrder, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*registry.WorkOrder
	for _, o := range reg.WorkOrders {
		if filters.Status != "" && string(o.Status) != filters.Status {
			continue
		}
		if filters.TechnicianID != "" && o.AssignedTechnicianID != filters.TechnicianID {
			continue
		}
		matched = append(matched, o)
	}
	return ordersToViews(matched), nil
}

// AdvanceStatus moves an order forward one rank, saturating at the terminal
// rank. Repeated calls at the terminal rank are no-ops.
func (s *OrderServiceImpl) AdvanceStatus(ctx context.Context, orderID string) (*primary.WorkOrder, error) {
	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}

	advanced := order.Advance(o.Status)
	if advanced == o.Status {
		// Terminal rank: nothing to publish.
		return orderToView(o), nil
	}

	o.Status = advanced
	if advanced == order.StatusComplete && o.DurationMinutes == 0 {
		o.DurationMinutes = s.estimate(o.Priority)
	}
	o.UpdatedAt = s.now()

	if o.AssignedTechnicianID != "" {
		next.SyncTechnician(o.AssignedTechnicianID)
	}

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("work order advanced",
		zap.String("order_id", o.ID),
		zap.String("status", string(o.Status)))

	return orderToView(o), nil
}

// SetStatus overwrites the status directly. Any valid label is legal; no
// ordering is enforced on direct set.
func (s *OrderServiceImpl) SetStatus(ctx context.Context, orderID, status string) (*primary.WorkOrder, error) {
	target := order.Status(status)
	if !target.Valid() {
		return nil, &apperr.ValidationError{Field: "status", Reason: "unknown status " + status}
	}

	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}

	o.Status = target
	o.UpdatedAt = s.now()

	if o.AssignedTechnicianID != "" {
		next.SyncTechnician(o.AssignedTechnicianID)
	}

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}
	return orderToView(o), nil
}

// SetStage overwrites the descriptive stage.
func (s *OrderServiceImpl) SetStage(ctx context.Context, orderID, stage string) (*primary.WorkOrder, error) {
	target := order.Stage(stage)
	if !target.Valid() {
		return nil, &apperr.ValidationError{Field: "stage", Reason: "unknown stage " + stage}
	}

	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}

	o.Stage = target
	o.UpdatedAt = s.now()

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}
	return orderToView(o), nil
}

// AssignTechnician assigns a technician to an order; an empty technician ID
// clears the assignment. No exclusivity is enforced - a technician may be
// referenced by several orders at once.
func (s *OrderServiceImpl) AssignTechnician(ctx context.Context, orderID, technicianID string) (*primary.WorkOrder, error) {
	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}

	if technicianID != "" {
		if _, ok := next.Technician(technicianID); !ok {
			return nil, &apperr.NotFoundError{Kind: "technician", ID: technicianID}
		}
	}

	previous := o.AssignedTechnicianID
	o.AssignedTechnicianID = technicianID
	o.UpdatedAt = s.now()

	if previous != "" && previous != technicianID {
		next.SyncTechnician(previous)
	}
	if technicianID != "" {
		next.SyncTechnician(technicianID)
	}

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("work order assigned",
		zap.String("order_id", o.ID),
		zap.String("technician_id", technicianID))

	return orderToView(o), nil
}

// Annotate replaces the free-text notes.
func (s *OrderServiceImpl) Annotate(ctx context.Context, orderID, notes string) (*primary.WorkOrder, error) {
	return s.update(ctx, orderID, func(o *registry.WorkOrder) {
		o.Notes = notes
	})
}

// AttachPhoto increments the photo count.
func (s *OrderServiceImpl) AttachPhoto(ctx context.Context, orderID string) (*primary.WorkOrder, error) {
	return s.update(ctx, orderID, func(o *registry.WorkOrder) {
		o.PhotoCount++
	})
}

// ToggleClock flips the per-order work clock. Clock state is independent of
// the lifecycle status.
func (s *OrderServiceImpl) ToggleClock(ctx context.Context, orderID string) (*primary.WorkOrder, error) {
	return s.update(ctx, orderID, func(o *registry.WorkOrder) {
		o.ClockedIn = !o.ClockedIn
	})
}

// update applies a simple field edit to one order and publishes.
func (s *OrderServiceImpl) update(ctx context.Context, orderID string, edit func(*registry.WorkOrder)) (*primary.WorkOrder, error) {
	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}

	edit(o)
	o.UpdatedAt = s.now()

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}
	return orderToView(o), nil
}

// RecordPartUsage appends a usage record at the part's current cost and
// consumes stock. Both effects land in the same published snapshot.
func (s *OrderServiceImpl) RecordPartUsage(ctx context.Context, orderID, partID string, quantity int) (*primary.WorkOrder, error) {
	if quantity < 1 {
		return nil, &apperr.ValidationError{Field: "quantity", Reason: "quantity must be at least 1"}
	}

	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}
	part, ok := next.Part(partID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "part", ID: partID}
	}

	applyPartUsage(o, part, quantity)
	o.UpdatedAt = s.now()

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("part usage recorded",
		zap.String("order_id", o.ID),
		zap.String("part_id", part.ID),
		zap.Int("quantity", quantity),
		zap.Int("on_hand", part.OnHand))

	return orderToView(o), nil
}

// applyPartUsage records consumption on the order and the ledger. The cost
// is captured at time of use; underflow clamps at zero but the usage is
// still recorded - the part left the shelf regardless of the count.
func applyPartUsage(o *registry.WorkOrder, part *registry.Part, quantity int) {
	o.PartsUsed = append(o.PartsUsed, registry.PartUsage{
		PartID:   part.ID,
		Quantity: quantity,
		UnitCost: part.UnitCost,
	})
	part.OnHand = inventory.Consume(part.OnHand, quantity)
}

// ScanTextForParts resolves free text against the known parts and records
// one usage per distinct part found. No matches means no side effects.
func (s *OrderServiceImpl) ScanTextForParts(ctx context.Context, orderID, text string) (*primary.ScanResult, error) {
	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	o, ok := next.Order(orderID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "work order", ID: orderID}
	}

	known := make([]scan.PartRef, len(next.Parts))
	for i, p := range next.Parts {
		known[i] = scan.PartRef{ID: p.ID, Name: p.Name}
	}

	matched := scan.MatchParts(text, known)
	if len(matched) == 0 {
		return &primary.ScanResult{Order: orderToView(o)}, nil
	}

	for _, partID := range matched {
		part, _ := next.Part(partID)
		applyPartUsage(o, part, 1)
	}
	o.UpdatedAt = s.now()

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("parts scan recorded",
		zap.String("order_id", o.ID),
		zap.Strings("part_ids", matched))

	return &primary.ScanResult{MatchedPartIDs: matched, Order: orderToView(o)}, nil
}

// Ensure OrderServiceImpl implements the interface
var _ primary.OrderService = (*OrderServiceImpl)(nil)
