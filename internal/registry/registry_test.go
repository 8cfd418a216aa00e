package registry

import (
	"testing"
	"time"

	"github.com/example/dispatchiq/internal/core/order"
)

var seedTime = time.Date(2026, 8, 14, 8, 0, 0, 0, time.UTC)

func TestCloneIsolation(t *testing.T) {
	reg := Seed(seedTime)
	clone := reg.Clone()

	clone.Version = 99
	clone.Parts[0].OnHand = 0
	clone.WorkOrders[0].Status = order.StatusInvoiced
	clone.WorkOrders[1].PartsUsed = append(clone.WorkOrders[1].PartsUsed, PartUsage{PartID: "FILTER-XL", Quantity: 1})
	clone.Technicians[0].Status = TechAvailable

	if reg.Version != 1 {
		t.Errorf("original Version = %d, want 1", reg.Version)
	}
	if reg.Parts[0].OnHand != 6 {
		t.Errorf("original Parts[0].OnHand = %d, want 6", reg.Parts[0].OnHand)
	}
	if reg.WorkOrders[0].Status != order.StatusOpen {
		t.Errorf("original WorkOrders[0].Status = %q, want open", reg.WorkOrders[0].Status)
	}
	if len(reg.WorkOrders[1].PartsUsed) != 0 {
		t.Errorf("original WorkOrders[1].PartsUsed length = %d, want 0", len(reg.WorkOrders[1].PartsUsed))
	}
	if reg.Technicians[0].Status != TechOnJob {
		t.Errorf("original Technicians[0].Status = %q, want on_job", reg.Technicians[0].Status)
	}
}

func TestLookups(t *testing.T) {
	reg := Seed(seedTime)

	if _, ok := reg.Order("RO-2417"); !ok {
		t.Error("Order(RO-2417) not found")
	}
	if _, ok := reg.Order("RO-9999"); ok {
		t.Error("Order(RO-9999) found, want miss")
	}
	if p, ok := reg.Part("FILTER-XL"); !ok || p.OnHand != 6 {
		t.Errorf("Part(FILTER-XL) = %+v, %v", p, ok)
	}
	if _, ok := reg.Technician("T-03"); !ok {
		t.Error("Technician(T-03) not found")
	}
}

func TestMaxOrderNumber(t *testing.T) {
	reg := Seed(seedTime)
	if got := reg.MaxOrderNumber(order.ParseOrderNumber); got != 2419 {
		t.Errorf("MaxOrderNumber() = %d, want 2419", got)
	}
}

func TestSyncTechnician(t *testing.T) {
	reg := Seed(seedTime)

	// RO-2418 completes; T-01 has no other active order and becomes available.
	o, _ := reg.Order("RO-2418")
	o.Status = order.StatusComplete
	reg.SyncTechnician("T-01")

	tech, _ := reg.Technician("T-01")
	if tech.Status != TechAvailable {
		t.Errorf("Status = %q, want available", tech.Status)
	}
	if tech.CurrentOrderID != "" {
		t.Errorf("CurrentOrderID = %q, want empty", tech.CurrentOrderID)
	}

	// Assigning the open order puts the tech back on a job.
	open, _ := reg.Order("RO-2417")
	open.AssignedTechnicianID = "T-01"
	reg.SyncTechnician("T-01")

	if tech.Status != TechOnJob {
		t.Errorf("Status = %q, want on_job", tech.Status)
	}
	if tech.CurrentOrderID != "RO-2417" {
		t.Errorf("CurrentOrderID = %q, want RO-2417", tech.CurrentOrderID)
	}
}

func TestSyncTechnicianMostRecentActiveWins(t *testing.T) {
	reg := Seed(seedTime)

	// Two active orders reference T-03; no exclusivity is enforced, the most
	// recently touched one is the technician's current order.
	first, _ := reg.Order("RO-2417")
	first.AssignedTechnicianID = "T-03"
	first.UpdatedAt = seedTime.Add(10 * time.Minute)

	second, _ := reg.Order("RO-2418")
	second.AssignedTechnicianID = "T-03"
	second.UpdatedAt = seedTime.Add(20 * time.Minute)

	reg.SyncTechnician("T-03")

	tech, _ := reg.Technician("T-03")
	if tech.CurrentOrderID != "RO-2418" {
		t.Errorf("CurrentOrderID = %q, want RO-2418", tech.CurrentOrderID)
	}
}
