package registry

import (
	"time"

	"github.com/example/dispatchiq/internal/core/order"
)

// Seed builds the development fixture registry: the NTFR shop with a small
// crew, a realistic parts shelf, and a day's worth of work orders. Reset and
// first-run bootstrap both start from here.
func Seed(now time.Time) *Registry {
	return &Registry{
		Version: 1,
		Settings: Settings{
			Org:      "North Texas Fleet & Refrigeration",
			Currency: "USD",
		},
		Technicians: []*Technician{
			{ID: "T-01", Name: "Javier Ortiz", Skill: "refrigeration", Status: TechOnJob, CurrentOrderID: "RO-2418", Location: "Garland yard"},
			{ID: "T-02", Name: "Dana Whitfield", Skill: "fleet diesel", Status: TechAvailable, Location: "Plano shop"},
			{ID: "T-03", Name: "Marcus Lee", Skill: "electrical", Status: TechAvailable, Location: "On road - I-635"},
		},
		Parts: []*Part{
			{ID: "FILTER-XL", Name: "Oversize drier filter", OnHand: 6, MinStock: 2, UnitCost: 34.50},
			{ID: "P-1004", Name: "Compressor contactor 220V", OnHand: 0, MinStock: 1, UnitCost: 58.00},
			{ID: "BELT-A38", Name: "Serpentine belt A38", OnHand: 12, MinStock: 4, UnitCost: 9.75},
			{ID: "R404A-30", Name: "R-404A refrigerant 30lb", OnHand: 3, MinStock: 2, UnitCost: 189.00},
			{ID: "FUSE-30A", Name: "Cartridge fuse 30A", OnHand: 24, MinStock: 10, UnitCost: 1.80},
		},
		WorkOrders: []*WorkOrder{
			{
				ID:         "RO-2417",
				Title:      "Reefer won't hold temp",
				Customer:   "Route 12",
				UnitID:     "Trailer 408",
				Status:     order.StatusOpen,
				Stage:      order.StageIntake,
				Priority:   order.PriorityHigh,
				ETA:        "08:30",
				PartsUsed:  []PartUsage{},
				CreatedAt:  now,
				UpdatedAt:  now,
			},
			{
				ID:                   "RO-2418",
				Title:                "Compressor diagnostics",
				Customer:             "Store #241",
				UnitID:               "Dock Unit",
				Status:               order.StatusInProgress,
				Stage:                order.StageDiagnostics,
				AssignedTechnicianID: "T-01",
				Priority:             order.PriorityNormal,
				ETA:                  "09:15",
				ClockedIn:            true,
				PartsUsed:            []PartUsage{},
				CreatedAt:            now,
				UpdatedAt:            now,
			},
			{
				ID:                   "RO-2419",
				Title:                "Planned maintenance",
				Customer:             "Fleet PM",
				UnitID:               "Truck #17",
				Status:               order.StatusComplete,
				Stage:                order.StageQualityCheck,
				AssignedTechnicianID: "T-02",
				Priority:             order.PriorityNormal,
				ETA:                  "10:05",
				PartsUsed:            []PartUsage{},
				CreatedAt:            now,
				UpdatedAt:            now,
				DurationMinutes:      95,
			},
		},
	}
}
