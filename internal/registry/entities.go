// Package registry holds the entity model and the registry snapshot: the
// single source of truth the engine and the read side operate on.
package registry

import (
	"time"

	"github.com/example/dispatchiq/internal/core/order"
)

// TechStatus is the availability state of a technician. It is derived from
// the work orders that reference the technician, never edited directly.
type TechStatus string

const (
	TechAvailable TechStatus = "available"
	TechOnJob     TechStatus = "on_job"
)

// Technician is a field tech known to dispatch.
type Technician struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Skill          string     `json:"skill"`
	Status         TechStatus `json:"status"`
	CurrentOrderID string     `json:"currentOrderId,omitempty"`
	Location       string     `json:"location"`
}

// Part is an inventory item identified by SKU.
type Part struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	OnHand   int     `json:"onHand"`
	MinStock int     `json:"minStock"`
	UnitCost float64 `json:"unitCost,omitempty"`
}

// PartUsage records that a quantity of a part was consumed by a work order.
// UnitCost is the part's cost at time of use, not re-read later.
type PartUsage struct {
	PartID   string  `json:"partId"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unitCost"`
}

// WorkOrder is a unit of field-service work tracked through the lifecycle.
type WorkOrder struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Customer             string         `json:"customer"`
	UnitID               string         `json:"unitId"`
	Status               order.Status   `json:"status"`
	Stage                order.Stage    `json:"stage"`
	AssignedTechnicianID string         `json:"assignedTechnicianId,omitempty"`
	ETA                  string         `json:"eta,omitempty"`
	Priority             order.Priority `json:"priority"`
	Notes                string         `json:"notes,omitempty"`
	PhotoCount           int            `json:"photoCount"`
	ClockedIn            bool           `json:"clockedIn"`
	PartsUsed            []PartUsage    `json:"partsUsed"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	DurationMinutes      int            `json:"durationMinutes"`
}

// Active reports whether the order still occupies its technician
// (open or in progress).
func (o *WorkOrder) Active() bool {
	rank := o.Status.Rank()
	return rank >= 0 && rank < order.StatusComplete.Rank()
}

// Settings holds organization-level settings, immutable after seed.
type Settings struct {
	Org      string `json:"org"`
	Currency string `json:"currency"`
}
