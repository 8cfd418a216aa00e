// Package query holds the read side: pure functions deriving views from a
// registry snapshot. Nothing here mutates; callers may invoke these freely
// against any snapshot.
package query

import (
	"strings"

	"github.com/example/dispatchiq/internal/core/inventory"
	"github.com/example/dispatchiq/internal/core/order"
	"github.com/example/dispatchiq/internal/registry"
)

// Metrics is the dashboard aggregate.
type Metrics struct {
	Total              int
	ByStatus           map[order.Status]int
	AvgDurationMinutes float64
	OpenUnassigned     int
	LowStockCount      int
}

// CountByStatus returns the number of work orders at the given status.
func CountByStatus(r *registry.Registry, s order.Status) int {
	count := 0
	for _, o := range r.WorkOrders {
		if o.Status == s {
			count++
		}
	}
	return count
}

// TotalCount returns the number of work orders in the registry.
func TotalCount(r *registry.Registry) int {
	return len(r.WorkOrders)
}

// AverageDuration returns the mean duration in minutes over orders with a
// nonzero recorded duration, or 0 when there are none.
func AverageDuration(r *registry.Registry) float64 {
	sum, n := 0, 0
	for _, o := range r.WorkOrders {
		if o.DurationMinutes > 0 {
			sum += o.DurationMinutes
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// DispatchQueue returns the open, unassigned work orders in collection order.
func DispatchQueue(r *registry.Registry) []*registry.WorkOrder {
	var queue []*registry.WorkOrder
	for _, o := range r.WorkOrders {
		if o.Status == order.StatusOpen && o.AssignedTechnicianID == "" {
			queue = append(queue, o)
		}
	}
	return queue
}

// LowStock returns the parts below their minimum stock threshold, in
// insertion order of the part collection.
func LowStock(r *registry.Registry) []*registry.Part {
	var low []*registry.Part
	for _, p := range r.Parts {
		if inventory.IsLow(p.OnHand, p.MinStock) {
			low = append(low, p)
		}
	}
	return low
}

// FindByIdentifier returns the first work order whose ID or unit tag matches
// the query exactly, case-insensitively. Blank queries match nothing;
// substrings do not match.
func FindByIdentifier(r *registry.Registry, q string) (*registry.WorkOrder, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, false
	}

	for _, o := range r.WorkOrders {
		if strings.EqualFold(o.ID, q) || strings.EqualFold(o.UnitID, q) {
			return o, true
		}
	}
	return nil, false
}

// ComputeMetrics derives the dashboard aggregate from a snapshot.
func ComputeMetrics(r *registry.Registry) Metrics {
	m := Metrics{
		Total:              TotalCount(r),
		ByStatus:           make(map[order.Status]int),
		AvgDurationMinutes: AverageDuration(r),
		OpenUnassigned:     len(DispatchQueue(r)),
		LowStockCount:      len(LowStock(r)),
	}
	for _, s := range []order.Status{order.StatusOpen, order.StatusInProgress, order.StatusComplete, order.StatusInvoiced} {
		m.ByStatus[s] = CountByStatus(r, s)
	}
	return m
}
