package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/dispatchiq/internal/apperr"
	"github.com/example/dispatchiq/internal/core/inventory"
	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/query"
)

// InventoryServiceImpl implements the InventoryService interface.
type InventoryServiceImpl struct {
	pub    publisher
	logger *zap.Logger
}

// NewInventoryService creates a new InventoryService with injected
// dependencies. The archive may be nil when no history is kept.
func NewInventoryService(store secondary.RegistryStore, archive secondary.SnapshotArchive, logger *zap.Logger) *InventoryServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryServiceImpl{
		pub:    publisher{store: store, archive: archive, logger: logger},
		logger: logger,
	}
}

// GetPart retrieves a part by SKU.
func (s *InventoryServiceImpl) GetPart(ctx context.Context, partID string) (*primary.Part, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}

	part, ok := reg.Part(partID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "part", ID: partID}
	}
	return partToView(part), nil
}

// ListParts lists all parts in shelf order.
func (s *InventoryServiceImpl) ListParts(ctx context.Context) ([]*primary.Part, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}

	parts := make([]*primary.Part, len(reg.Parts))
	for i, p := range reg.Parts {
		parts[i] = partToView(p)
	}
	return parts, nil
}

// ConsumePart decrements on-hand stock, clamping at zero. Consuming more
// than is on hand is not an error: the field consumption already happened,
// the count was simply wrong.
func (s *InventoryServiceImpl) ConsumePart(ctx context.Context, partID string, quantity int) (*primary.Part, error) {
	if quantity < 1 {
		return nil, &apperr.ValidationError{Field: "quantity", Reason: "quantity must be at least 1"}
	}

	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	part, ok := next.Part(partID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "part", ID: partID}
	}

	part.OnHand = inventory.Consume(part.OnHand, quantity)

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("part consumed",
		zap.String("part_id", part.ID),
		zap.Int("quantity", quantity),
		zap.Int("on_hand", part.OnHand))

	return partToView(part), nil
}

// RestockPart increments on-hand stock.
func (s *InventoryServiceImpl) RestockPart(ctx context.Context, partID string, quantity int) (*primary.Part, error) {
	if quantity < 1 {
		return nil, &apperr.ValidationError{Field: "quantity", Reason: "quantity must be at least 1"}
	}

	next, err := s.pub.begin(ctx)
	if err != nil {
		return nil, err
	}

	part, ok := next.Part(partID)
	if !ok {
		return nil, &apperr.NotFoundError{Kind: "part", ID: partID}
	}

	part.OnHand = inventory.Restock(part.OnHand, quantity)

	if err := s.pub.publish(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("part restocked",
		zap.String("part_id", part.ID),
		zap.Int("quantity", quantity),
		zap.Int("on_hand", part.OnHand))

	return partToView(part), nil
}

// LowStockItems returns the parts below their minimum threshold, in shelf
// order.
func (s *InventoryServiceImpl) LowStockItems(ctx context.Context) ([]*primary.Part, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}

	low := query.LowStock(reg)
	parts := make([]*primary.Part, len(low))
	for i, p := range low {
		parts[i] = partToView(p)
	}
	return parts, nil
}

// Ensure InventoryServiceImpl implements the interface
var _ primary.InventoryService = (*InventoryServiceImpl)(nil)
