package app

import (
	"time"

	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/query"
	"github.com/example/dispatchiq/internal/registry"
)

func orderToView(o *registry.WorkOrder) *primary.WorkOrder {
	view := &primary.WorkOrder{
		ID:                   o.ID,
		Title:                o.Title,
		Customer:             o.Customer,
		UnitID:               o.UnitID,
		Status:               string(o.Status),
		Stage:                string(o.Stage),
		AssignedTechnicianID: o.AssignedTechnicianID,
		ETA:                  o.ETA,
		Priority:             string(o.Priority),
		Notes:                o.Notes,
		PhotoCount:           o.PhotoCount,
		ClockedIn:            o.ClockedIn,
		PartsUsed:            make([]primary.PartUsage, len(o.PartsUsed)),
		CreatedAt:            o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            o.UpdatedAt.Format(time.RFC3339),
		DurationMinutes:      o.DurationMinutes,
	}
	for i, u := range o.PartsUsed {
		view.PartsUsed[i] = primary.PartUsage{
			PartID:   u.PartID,
			Quantity: u.Quantity,
			UnitCost: u.UnitCost,
		}
	}
	return view
}

func ordersToViews(orders []*registry.WorkOrder) []*primary.WorkOrder {
	views := make([]*primary.WorkOrder, len(orders))
	for i, o := range orders {
		views[i] = orderToView(o)
	}
	return views
}

func partToView(p *registry.Part) *primary.Part {
	return &primary.Part{
		ID:       p.ID,
		Name:     p.Name,
		OnHand:   p.OnHand,
		MinStock: p.MinStock,
		UnitCost: p.UnitCost,
	}
}

func techToView(t *registry.Technician) *primary.Technician {
	return &primary.Technician{
		ID:             t.ID,
		Name:           t.Name,
		Skill:          t.Skill,
		Status:         string(t.Status),
		CurrentOrderID: t.CurrentOrderID,
		Location:       t.Location,
	}
}

func metricsToView(m query.Metrics) *primary.Metrics {
	view := &primary.Metrics{
		Total:              m.Total,
		CountByStatus:      make(map[string]int, len(m.ByStatus)),
		AvgDurationMinutes: m.AvgDurationMinutes,
		OpenUnassigned:     m.OpenUnassigned,
		LowStockCount:      m.LowStockCount,
	}
	for status, count := range m.ByStatus {
		view.CountByStatus[string(status)] = count
	}
	return view
}
